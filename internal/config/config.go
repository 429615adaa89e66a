package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"collegefest_backend/internal/logger"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		AdminEmail   string `yaml:"admin_email"`
	} `yaml:"email"`

	JWT struct {
		Secret     string `yaml:"secret"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"jwt"`

	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Email    string `yaml:"email"`
	} `yaml:"admin"`
}

// Load reads the optional yaml config file, then applies environment
// overrides. Secrets have no production fallback: missing values get a
// development-only default and a warning.
func Load() (*Config, error) {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 3000
	cfg.Server.Env = "development"
	cfg.Email.SMTPPort = 587
	cfg.JWT.TTLMinutes = 60
	cfg.Admin.Username = "admin"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database DSN is not configured (DATABASE_DSN or %s)", configPath)
	}

	if cfg.JWT.Secret == "" {
		if cfg.Server.Env == "production" {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		logger.Warn("JWT_SECRET not set, using an insecure development secret")
		cfg.JWT.Secret = "dev-only-secret"
	}

	if cfg.Admin.Password == "" {
		if cfg.Server.Env == "production" {
			return nil, fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
		logger.Warn("ADMIN_PASSWORD not set, seeding admin with a development password")
		cfg.Admin.Password = "admin123"
	}

	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host not configured, outgoing email is disabled")
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Env, "SERVER_ENV")
	setString(&cfg.Database.DSN, "DATABASE_DSN")
	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setString(&cfg.Email.SMTPUser, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "FROM_EMAIL")
	setString(&cfg.Email.FromName, "FROM_NAME")
	setString(&cfg.Email.AdminEmail, "ADMIN_EMAIL")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setInt(&cfg.JWT.TTLMinutes, "JWT_TTL_MINUTES")
	setString(&cfg.Admin.Username, "ADMIN_USERNAME")
	setString(&cfg.Admin.Password, "ADMIN_PASSWORD")
	setString(&cfg.Admin.Email, "ADMIN_SEED_EMAIL")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
