package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"collegefest_backend/internal/services"
	"collegefest_backend/internal/services/dto"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

// AddEvent handles the legacy admin form (POST /add-event). The 200 goes out
// once the insert commits and the broadcast is submitted; the fan-out itself
// runs in the background.
func (h *EventHandler) AddEvent(c *gin.Context) {
	var req dto.AddEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if _, _, err := h.eventService.AddEvent(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, "Event added successfully")
}

// CreateEvent handles POST /api/events.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	event, _, err := h.eventService.CreateEvent(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *EventHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, _, err := h.eventService.CreateCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *EventHandler) ListCategories(c *gin.Context) {
	categories, err := h.eventService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *EventHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.eventService.DeleteCategory(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// NotifyCategory handles POST /api/notify-category. Unlike AddEvent this
// waits for the whole fan-out before answering.
func (h *EventHandler) NotifyCategory(c *gin.Context) {
	var req dto.NotifyCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, categoryName, err := h.eventService.NotifyCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Notifications sent to %d users about the new %s event",
			result.Recipients, categoryName),
	})
}

// NotifyUsers handles POST /api/notify-users, awaited like NotifyCategory.
func (h *EventHandler) NotifyUsers(c *gin.Context) {
	var req dto.NotifyUsersRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.eventService.NotifyUsers(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Notifications sent to %d users", result.Recipients),
	})
}
