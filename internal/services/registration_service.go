package services

import (
	"fmt"
	"strings"

	"collegefest_backend/internal/email"
	"collegefest_backend/internal/logger"
	"collegefest_backend/internal/models"
	"collegefest_backend/internal/repositories"
	"collegefest_backend/internal/services/dto"
	"collegefest_backend/pkg/apperrors"
)

// RegistrationService handles event-participation signups plus the contact
// and feedback forms. Confirmation emails are best effort: failures are
// logged, the insert still counts as success.
type RegistrationService interface {
	Register(req *dto.RegisterRequest) (*models.Registration, error)
	ListRegistrations() ([]models.Registration, error)
	SubmitContactForm(req *dto.ContactFormRequest) error
	SubmitFeedback(req *dto.FeedbackRequest) error
}

type registrationService struct {
	registrationRepo repositories.RegistrationRepository
	mailer           email.Mailer
	adminEmail       string
}

func NewRegistrationService(
	registrationRepo repositories.RegistrationRepository,
	mailer email.Mailer,
	adminEmail string,
) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		mailer:           mailer,
		adminEmail:       adminEmail,
	}
}

func (s *registrationService) Register(req *dto.RegisterRequest) (*models.Registration, error) {
	registration := &models.Registration{
		Name:      req.Name,
		Branch:    req.Branch,
		Phone:     req.Phone,
		EventType: req.EventType,
		SubEvents: strings.Join(req.SubEvents, ", "),
		Email:     req.Email,
	}
	if err := s.registrationRepo.CreateRegistration(registration); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	confirmation := fmt.Sprintf(
		"Hello %s,\n\nYou have successfully registered for the %s event.\nSub Events: %s\n\nThank you for registering!\nTeam College Fest",
		registration.Name, registration.EventType, registration.SubEvents,
	)
	if err := s.mailer.Send(registration.Email, "College Fest Registration Successful", confirmation); err != nil {
		logger.Error("registration confirmation email failed",
			"registration_id", registration.ID, "recipient", registration.Email, "error", err)
	}

	if s.adminEmail != "" {
		adminCopy := fmt.Sprintf(
			"New registration received:\n\nName: %s\nBranch: %s\nPhone: %s\nEmail: %s\nEvent Type: %s\nSub Events: %s",
			registration.Name, registration.Branch, registration.Phone,
			registration.Email, registration.EventType, registration.SubEvents,
		)
		if err := s.mailer.Send(s.adminEmail, "New College Fest Registration", adminCopy); err != nil {
			logger.Error("registration admin email failed",
				"registration_id", registration.ID, "error", err)
		}
	}

	return registration, nil
}

func (s *registrationService) ListRegistrations() ([]models.Registration, error) {
	registrations, err := s.registrationRepo.ListRegistrations()
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return registrations, nil
}

func (s *registrationService) SubmitContactForm(req *dto.ContactFormRequest) error {
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
		Message: req.Message,
	}
	if err := s.registrationRepo.CreateContactMessage(msg); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (s *registrationService) SubmitFeedback(req *dto.FeedbackRequest) error {
	feedback := &models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	}
	if err := s.registrationRepo.CreateFeedback(feedback); err != nil {
		return apperrors.NewStorageError(err)
	}

	if s.adminEmail != "" {
		body := fmt.Sprintf("Name: %s\nEmail: %s\nRating: %d stars\nFeedback: %s",
			feedback.Name, feedback.Email, feedback.Rating, feedback.Message)
		if err := s.mailer.Send(s.adminEmail, "New Event Feedback", body); err != nil {
			logger.Error("feedback email failed", "feedback_id", feedback.ID, "error", err)
		}
	}

	return nil
}
