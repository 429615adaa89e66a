package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collegefest_backend/internal/services"
	"collegefest_backend/internal/services/dto"
)

type RegistrationHandler struct {
	*BaseHandler
	registrationService services.RegistrationService
}

func NewRegistrationHandler(base *BaseHandler, registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:         base,
		registrationService: registrationService,
	}
}

// Register handles the event-participation form (POST /register). The legacy
// response text is kept even when the confirmation emails fail; those are
// best effort and only logged.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if _, err := h.registrationService.Register(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, "Registration Successful & Emails Sent")
}

// List returns all registrations newest first (GET /registrations).
func (h *RegistrationHandler) List(c *gin.Context) {
	registrations, err := h.registrationService.ListRegistrations()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, registrations)
}

func (h *RegistrationHandler) SubmitContactForm(c *gin.Context) {
	var req dto.ContactFormRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.registrationService.SubmitContactForm(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, "Form submitted successfully")
}

func (h *RegistrationHandler) SubmitFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.registrationService.SubmitFeedback(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, "Feedback submitted successfully")
}
