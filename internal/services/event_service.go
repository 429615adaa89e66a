package services

import (
	"fmt"
	"strings"

	"collegefest_backend/internal/models"
	"collegefest_backend/internal/repositories"
	"collegefest_backend/internal/services/dto"
	"collegefest_backend/pkg/apperrors"
)

const newEventTitle = "New Event Added!"

// EventService owns event and category writes and the broadcasts they
// trigger. Create operations commit the row first; the fan-out never blocks
// or fails the admin write.
type EventService interface {
	// AddEvent inserts an event and fires an async broadcast. The returned
	// count is the recipient snapshot size.
	AddEvent(req *dto.AddEventRequest) (*models.Event, int, error)
	CreateEvent(req *dto.CreateEventRequest) (*models.Event, int, error)
	ListEvents() ([]models.Event, error)
	DeleteEvent(id uint) error

	CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, int, error)
	ListCategories() ([]models.Category, error)
	DeleteCategory(id uint) error

	// NotifyCategory announces an event in a category and waits for the
	// full fan-out. Returns the category name with the result.
	NotifyCategory(req *dto.NotifyCategoryRequest) (BroadcastResult, string, error)
	// NotifyUsers sends an admin-composed announcement, awaited.
	NotifyUsers(req *dto.NotifyUsersRequest) (BroadcastResult, error)
}

type eventService struct {
	eventRepo   repositories.EventRepository
	broadcaster BroadcastService
}

func NewEventService(eventRepo repositories.EventRepository, broadcaster BroadcastService) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		broadcaster: broadcaster,
	}
}

func (s *eventService) AddEvent(req *dto.AddEventRequest) (*models.Event, int, error) {
	event := &models.Event{
		Name:      req.EventName,
		EventDate: req.EventDate,
	}
	if err := s.eventRepo.CreateEvent(event); err != nil {
		return nil, 0, apperrors.NewStorageError(err)
	}

	recipients, err := s.broadcaster.BroadcastAsync(Announcement{
		Title:   newEventTitle,
		Message: fmt.Sprintf("%s is happening on %s. Register now!", event.Name, event.EventDate),
	})
	if err != nil {
		// The event row is committed; a failed recipient fetch only
		// kills the announcement, not the admin write.
		return event, 0, err
	}

	return event, recipients, nil
}

func (s *eventService) CreateEvent(req *dto.CreateEventRequest) (*models.Event, int, error) {
	category, err := s.eventRepo.FindCategoryByID(req.CategoryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, 0, apperrors.NewBadRequestError("Invalid category")
		}
		return nil, 0, apperrors.NewStorageError(err)
	}

	event := &models.Event{
		Name:        req.Name,
		Category:    category.Name,
		EventDate:   req.EventDate,
		Description: req.Description,
	}
	if err := s.eventRepo.CreateEvent(event); err != nil {
		return nil, 0, apperrors.NewStorageError(err)
	}

	recipients, err := s.broadcaster.BroadcastAsync(Announcement{
		Title:   newEventTitle,
		Message: eventAnnouncementBody(event.Name, category.Name, event.EventDate, event.Description),
	})
	if err != nil {
		return event, 0, err
	}

	return event, recipients, nil
}

func (s *eventService) ListEvents() ([]models.Event, error) {
	events, err := s.eventRepo.ListEvents()
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return events, nil
}

func (s *eventService) DeleteEvent(id uint) error {
	if err := s.eventRepo.DeleteEvent(id); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (s *eventService) CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, int, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.eventRepo.CreateCategory(category); err != nil {
		if isDuplicateKey(err) {
			return nil, 0, apperrors.NewConflictError("category", "Category already exists")
		}
		return nil, 0, apperrors.NewStorageError(err)
	}

	message := fmt.Sprintf("A new category %q is now open for events.", category.Name)
	if category.Description != "" {
		message += " " + category.Description
	}
	recipients, err := s.broadcaster.BroadcastAsync(Announcement{
		Title:   fmt.Sprintf("New Category: %s", category.Name),
		Message: message,
	})
	if err != nil {
		return category, 0, err
	}

	return category, recipients, nil
}

func (s *eventService) ListCategories() ([]models.Category, error) {
	categories, err := s.eventRepo.ListCategories()
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return categories, nil
}

func (s *eventService) DeleteCategory(id uint) error {
	if err := s.eventRepo.DeleteCategory(id); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (s *eventService) NotifyCategory(req *dto.NotifyCategoryRequest) (BroadcastResult, string, error) {
	category, err := s.eventRepo.FindCategoryByID(req.CategoryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return BroadcastResult{}, "", apperrors.NewBadRequestError("Invalid category")
		}
		return BroadcastResult{}, "", apperrors.NewStorageError(err)
	}

	event := &models.Event{
		Name:        req.EventName,
		Category:    category.Name,
		EventDate:   req.EventDate,
		Description: req.EventDescription,
	}
	if err := s.eventRepo.CreateEvent(event); err != nil {
		return BroadcastResult{}, "", apperrors.NewStorageError(err)
	}

	result, err := s.broadcaster.Broadcast(Announcement{
		Title:   fmt.Sprintf("New %s Event!", category.Name),
		Message: eventAnnouncementBody(event.Name, category.Name, event.EventDate, event.Description),
	})
	if err != nil {
		return BroadcastResult{}, "", err
	}

	return result, category.Name, nil
}

func (s *eventService) NotifyUsers(req *dto.NotifyUsersRequest) (BroadcastResult, error) {
	message := req.Message
	var details []string
	if req.EventName != "" {
		details = append(details, "Event: "+req.EventName)
	}
	if req.EventDate != "" {
		details = append(details, "Date: "+req.EventDate)
	}
	if req.CategoryName != "" {
		details = append(details, "Category: "+req.CategoryName)
	}
	if len(details) > 0 {
		message += "\n" + strings.Join(details, "\n")
	}

	return s.broadcaster.Broadcast(Announcement{
		Title:   req.Title,
		Message: message,
	})
}

func eventAnnouncementBody(name, category, date, description string) string {
	body := fmt.Sprintf("%s (%s)", name, category)
	if date != "" {
		body += " on " + date
	}
	if description != "" {
		body += ". " + description
	}
	return body
}
