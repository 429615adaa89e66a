package database

import (
	"errors"

	"gorm.io/gorm"

	"collegefest_backend/internal/auth"
	"collegefest_backend/internal/config"
	"collegefest_backend/internal/logger"
	"collegefest_backend/internal/models"
)

// Migrate creates or updates the schema. One schema set, the migrations are
// the source of truth for table shapes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.AdminUser{},
		&models.Event{},
		&models.Category{},
		&models.Notification{},
		&models.Registration{},
		&models.ContactMessage{},
		&models.Feedback{},
	)
}

// SeedDefaultAdmin creates the configured admin account if it does not exist.
func SeedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.AdminUser
	err := db.Where("username = ?", cfg.Admin.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	email := cfg.Admin.Email
	if email == "" {
		email = "admin@collegefest.local"
	}

	admin := &models.AdminUser{
		Username:     cfg.Admin.Username,
		PasswordHash: hash,
		Email:        email,
		Role:         models.AdminRoleSuperAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("seeded default admin user", "username", admin.Username)
	return nil
}
