package repositories

import (
	"gorm.io/gorm"

	"collegefest_backend/internal/models"
)

type RegistrationRepository interface {
	CreateRegistration(registration *models.Registration) error
	ListRegistrations() ([]models.Registration, error)
	CreateContactMessage(msg *models.ContactMessage) error
	CreateFeedback(feedback *models.Feedback) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) CreateRegistration(registration *models.Registration) error {
	return r.db.Create(registration).Error
}

func (r *registrationRepository) ListRegistrations() ([]models.Registration, error) {
	var registrations []models.Registration
	if err := r.db.Order("id DESC").Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) CreateContactMessage(msg *models.ContactMessage) error {
	return r.db.Create(msg).Error
}

func (r *registrationRepository) CreateFeedback(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}
