package repositories

import (
	"errors"

	"gorm.io/gorm"

	"collegefest_backend/internal/models"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type EventRepository interface {
	CreateEvent(event *models.Event) error
	FindEventByID(id uint) (*models.Event, error)
	ListEvents() ([]models.Event, error)
	DeleteEvent(id uint) error

	CreateCategory(category *models.Category) error
	FindCategoryByID(id uint) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	DeleteCategory(id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) FindEventByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListEvents() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) DeleteEvent(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}

func (r *eventRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *eventRepository) FindCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *eventRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *eventRepository) DeleteCategory(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}
