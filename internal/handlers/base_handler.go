package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"collegefest_backend/internal/logger"
	"collegefest_backend/internal/validator"
	"collegefest_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the request body and runs struct validation.
// On failure it writes the 400 response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Warn("failed to bind JSON body", "path", c.Request.URL.Path, "error", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.Warn("validation failed", "path", c.Request.URL.Path, "errors", vErr.Errors)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.Error("internal validator error", "path", c.Request.URL.Path, "error", err)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError writes a service error to the response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		apperrors.HandleError(c, appErr)
		return
	}
	logger.Error("internal server error", "path", c.Request.URL.Path, "error", err)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// ParseIDParam parses a numeric path parameter. On failure it writes the
// 400 response and returns false.
func (h *BaseHandler) ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name))
		return 0, false
	}
	return uint(id), true
}
