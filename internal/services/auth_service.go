package services

import (
	"strings"
	"time"

	"collegefest_backend/internal/auth"
	"collegefest_backend/internal/logger"
	"collegefest_backend/internal/models"
	"collegefest_backend/internal/repositories"
	"collegefest_backend/internal/services/dto"
	"collegefest_backend/pkg/apperrors"
)

type AuthService interface {
	RegisterUser(req *dto.RegisterUserRequest) (*models.User, error)
	LoginUser(username, password string) (bool, error)
	// AdminLogin verifies credentials and returns a signed session token.
	AdminLogin(username, password string) (string, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminUserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminUserRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) RegisterUser(req *dto.RegisterUserRequest) (*models.User, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperrors.NewConflictError("user", "Username is already taken")
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.NewStorageError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
	}
	if err := s.userRepo.Create(user); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError("user", "Username is already taken")
		}
		return nil, apperrors.NewStorageError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *authService) LoginUser(username, password string) (bool, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return false, nil
		}
		return false, apperrors.NewStorageError(err)
	}

	return auth.CheckPasswordHash(password, user.PasswordHash), nil
}

func (s *authService) AdminLogin(username, password string) (string, error) {
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.NewInvalidCredentialsError()
		}
		return "", apperrors.NewStorageError(err)
	}

	if !auth.CheckPasswordHash(password, admin.PasswordHash) {
		return "", apperrors.NewInvalidCredentialsError()
	}

	if err := s.adminRepo.UpdateLastLogin(admin.ID); err != nil {
		// Login still succeeds, the timestamp is best effort
		logger.Warn("failed to update admin last_login", "admin_id", admin.ID, "error", err)
	}

	token, err := auth.GenerateToken(s.jwtSecret, s.tokenTTL, admin)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
