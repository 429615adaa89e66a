package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collegefest_backend/internal/services"
	"collegefest_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterUser creates a site account (POST /register-user).
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if _, err := h.authService.RegisterUser(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration successful"})
}

// Login authenticates a site account (POST /login). The response keeps the
// legacy {success, message} shape the pages expect.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ok, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	if ok {
		c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Message: "Login successful"})
	} else {
		c.JSON(http.StatusOK, dto.LoginResponse{Success: false, Message: "Invalid credentials"})
	}
}

// AdminLogin issues an admin session token (POST /api/admin/login).
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	token, err := h.authService.AdminLogin(req.Username, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{Token: token})
}

// Dashboard is the trivial protected probe (GET /api/admin/dashboard).
func (h *AuthHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to admin dashboard"})
}
