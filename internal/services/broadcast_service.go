package services

import (
	"sync"

	"collegefest_backend/internal/email"
	"collegefest_backend/internal/logger"
	"collegefest_backend/internal/models"
	"collegefest_backend/internal/repositories"
	"collegefest_backend/pkg/apperrors"
)

// Announcement is one fan-out payload. Title and Message are used both for
// the persisted notification row and for the email subject/body.
type Announcement struct {
	Title   string
	Message string
}

// BroadcastResult aggregates per-recipient outcomes. Recorded and Sent are
// informational, neither is required to equal Recipients.
type BroadcastResult struct {
	Recipients int
	Recorded   int
	Sent       int
}

// BroadcastService fans an announcement out to every registered user: one
// notification write and one mail send per recipient, all failures isolated
// per recipient and per side effect.
type BroadcastService interface {
	// Broadcast runs the fan-out and returns after every per-recipient
	// task has finished.
	Broadcast(ann Announcement) (BroadcastResult, error)
	// BroadcastAsync snapshots the recipient list, launches the fan-out
	// in the background and returns the recipient count immediately.
	BroadcastAsync(ann Announcement) (int, error)
	// Drain blocks until all async fan-outs have completed. Called on
	// shutdown; tests use it to observe eventual state.
	Drain()
}

type broadcastService struct {
	userRepo      repositories.UserRepository
	notifications NotificationService
	mailer        email.Mailer
	inflight      sync.WaitGroup
}

func NewBroadcastService(
	userRepo repositories.UserRepository,
	notifications NotificationService,
	mailer email.Mailer,
) BroadcastService {
	return &broadcastService{
		userRepo:      userRepo,
		notifications: notifications,
		mailer:        mailer,
	}
}

func (s *broadcastService) Broadcast(ann Announcement) (BroadcastResult, error) {
	recipients, err := s.snapshot()
	if err != nil {
		return BroadcastResult{}, err
	}

	result := s.fanOut(recipients, ann)
	logSummary(ann, result)
	return result, nil
}

func (s *broadcastService) BroadcastAsync(ann Announcement) (int, error) {
	recipients, err := s.snapshot()
	if err != nil {
		return 0, err
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		result := s.fanOut(recipients, ann)
		logSummary(ann, result)
	}()

	return len(recipients), nil
}

func (s *broadcastService) Drain() {
	s.inflight.Wait()
}

// snapshot fetches the recipient list once. Users registering while the
// fan-out runs are not included.
func (s *broadcastService) snapshot() ([]models.User, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return users, nil
}

// fanOut runs one goroutine per recipient and waits for all of them. Each
// task attempts the notification write and the mail send independently; a
// failure of either never stops the other, or any sibling task. There is no
// retry and no cancellation: every started task runs to its terminal state.
func (s *broadcastService) fanOut(recipients []models.User, ann Announcement) BroadcastResult {
	result := BroadcastResult{Recipients: len(recipients)}

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, recipient := range recipients {
		wg.Add(1)
		go func(user models.User) {
			defer wg.Done()

			recorded := true
			if _, err := s.notifications.Record(user.ID, ann.Title, ann.Message); err != nil {
				recorded = false
				logger.Error("broadcast: notification write failed",
					"user_id", user.ID, "title", ann.Title, "error", err)
			}

			sent := true
			if err := s.mailer.Send(user.Email, ann.Title, ann.Message); err != nil {
				sent = false
				logger.Error("broadcast: mail send failed",
					"user_id", user.ID, "recipient", user.Email, "error", err)
			}

			mu.Lock()
			if recorded {
				result.Recorded++
			}
			if sent {
				result.Sent++
			}
			mu.Unlock()

			logger.Debug("broadcast: recipient task finished",
				"user_id", user.ID, "recorded", recorded, "sent", sent)
		}(recipient)
	}

	wg.Wait()
	return result
}

func logSummary(ann Announcement, result BroadcastResult) {
	logger.Info("broadcast finished",
		"title", ann.Title,
		"recipients", result.Recipients,
		"recorded", result.Recorded,
		"sent", result.Sent,
	)
}
