package services

import (
	"collegefest_backend/internal/models"
	"collegefest_backend/internal/repositories"
	"collegefest_backend/pkg/apperrors"
)

// NotificationService is the notification writer plus the user-facing reads.
// It does not know about email: persistence and delivery are uncoupled side
// effects of the same broadcast.
type NotificationService interface {
	// Record appends exactly one notification row and returns its id.
	Record(userID uint, title, message string) (uint, error)
	ListForUser(userID uint) ([]models.Notification, error)
	MarkRead(notificationID uint) error
	UnreadCount(userID uint) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Record(userID uint, title, message string) (uint, error) {
	notification := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		IsRead:  false,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return 0, apperrors.NewStorageError(err)
	}
	return notification.ID, nil
}

func (s *notificationService) ListForUser(userID uint) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListForUser(userID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(notificationID uint) error {
	if err := s.notificationRepo.MarkRead(notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification", "Notification not found")
		}
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(userID uint) (int64, error) {
	count, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return 0, apperrors.NewStorageError(err)
	}
	return count, nil
}
