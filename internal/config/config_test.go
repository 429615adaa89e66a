package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegefest_backend/internal/config"
)

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "does-not-exist.yaml")
	t.Setenv("DATABASE_DSN", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "does-not-exist.yaml")
	t.Setenv("DATABASE_DSN", "fest:fest@tcp(127.0.0.1:3306)/fest?parseTime=true")
	t.Setenv("SERVER_PORT", "4000")
	t.Setenv("JWT_SECRET", "override-secret")
	t.Setenv("ADMIN_PASSWORD", "override-password")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "override-secret", cfg.JWT.Secret)
	assert.Equal(t, "override-password", cfg.Admin.Password)
	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestLoadDevelopmentDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "does-not-exist.yaml")
	t.Setenv("DATABASE_DSN", "fest:fest@tcp(127.0.0.1:3306)/fest?parseTime=true")
	t.Setenv("SERVER_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.NotEmpty(t, cfg.Admin.Password)
}

func TestLoadProductionRequiresSecrets(t *testing.T) {
	t.Setenv("CONFIG_PATH", "does-not-exist.yaml")
	t.Setenv("DATABASE_DSN", "fest:fest@tcp(127.0.0.1:3306)/fest?parseTime=true")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
