package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collegefest_backend/internal/services"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

// ListForUser returns a user's notifications newest first
// (GET /api/notifications/:userId).
func (h *NotificationHandler) ListForUser(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListForUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UnreadCount returns the unread badge count
// (GET /api/notifications/:userId/unread-count).
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkRead marks one notification read (PUT /api/notifications/:notificationId).
// Marking an already-read notification succeeds again.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, ok := h.ParseIDParam(c, "notificationId")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(notificationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
