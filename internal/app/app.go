package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"collegefest_backend/internal/config"
	"collegefest_backend/internal/database"
	"collegefest_backend/internal/email"
	"collegefest_backend/internal/handlers"
	"collegefest_backend/internal/logger"
	"collegefest_backend/internal/middleware"
	"collegefest_backend/internal/repositories"
	"collegefest_backend/internal/routes"
	"collegefest_backend/internal/services"
	"collegefest_backend/internal/validator"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}
	if err := database.SeedDefaultAdmin(db, cfg); err != nil {
		logger.Fatal("failed to seed admin user", "error", err)
	}

	mailer := email.NewSMTPMailer(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUser,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})

	router, container := SetupRouter(cfg, db, mailer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	// Let in-flight broadcasts reach their terminal states
	container.Broadcast.Drain()
	logger.Info("shutdown complete")
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// One shared pool for every component; the pool re-dials lost
	// connections on later calls, in-flight statements fail individually.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	logger.Info("database connected")
	return db, nil
}

// SetupRouter builds the full handler stack over the given database and
// mailer. Tests call it with an in-memory database and a fake mailer.
func SetupRouter(cfg *config.Config, db *gorm.DB, mailer email.Mailer) (*gin.Engine, *services.Container) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	container := initializeServices(cfg, db, mailer)

	v := validator.New()
	base := handlers.NewBaseHandler(v)
	appHandlers := &handlers.AppHandlers{
		Auth:          handlers.NewAuthHandler(base, container.Auth),
		Events:        handlers.NewEventHandler(base, container.Events),
		Notifications: handlers.NewNotificationHandler(base, container.Notifications),
		Registrations: handlers.NewRegistrationHandler(base, container.Registrations),
		Health:        handlers.NewHealthHandler(db),
	}

	adminRepo := repositories.NewAdminUserRepository(db)
	adminAuth := middleware.AdminAuth(cfg.JWT.Secret, adminRepo)

	router := gin.Default()
	routes.RegisterRoutes(router, appHandlers, adminAuth)
	return router, container
}

func initializeServices(cfg *config.Config, db *gorm.DB, mailer email.Mailer) *services.Container {
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminUserRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	registrationRepo := repositories.NewRegistrationRepository(db)

	notificationService := services.NewNotificationService(notificationRepo)
	broadcastService := services.NewBroadcastService(userRepo, notificationService, mailer)

	return &services.Container{
		Auth: services.NewAuthService(
			userRepo, adminRepo,
			cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute,
		),
		Events:        services.NewEventService(eventRepo, broadcastService),
		Notifications: notificationService,
		Registrations: services.NewRegistrationService(registrationRepo, mailer, cfg.Email.AdminEmail),
		Broadcast:     broadcastService,
	}
}
