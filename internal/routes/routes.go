package routes

import (
	"os"

	"github.com/gin-gonic/gin"

	"collegefest_backend/internal/handlers"
	"collegefest_backend/internal/logger"
)

// RegisterRoutes wires every HTTP route. adminAuth guards the admin API
// group; the notification read/toggle routes stay public like the pages
// that poll them.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, adminAuth gin.HandlerFunc) {
	router.GET("/health", h.Health.Check)

	// Legacy page-facing routes
	router.POST("/add-event", h.Events.AddEvent)
	router.POST("/register", h.Registrations.Register)
	router.POST("/register-user", h.Auth.RegisterUser)
	router.POST("/login", h.Auth.Login)
	router.POST("/submit-form", h.Registrations.SubmitContactForm)
	router.POST("/submit-feedback", h.Registrations.SubmitFeedback)
	router.GET("/registrations", adminAuth, h.Registrations.List)

	api := router.Group("/api")
	{
		api.POST("/admin/login", h.Auth.AdminLogin)
		api.GET("/notifications/:userId", h.Notifications.ListForUser)
		api.GET("/notifications/:userId/unread-count", h.Notifications.UnreadCount)
		api.PUT("/notifications/:notificationId", h.Notifications.MarkRead)

		admin := api.Group("", adminAuth)
		{
			admin.GET("/admin/dashboard", h.Auth.Dashboard)

			admin.GET("/categories", h.Events.ListCategories)
			admin.POST("/categories", h.Events.CreateCategory)
			admin.DELETE("/categories/:id", h.Events.DeleteCategory)

			admin.GET("/events", h.Events.ListEvents)
			admin.POST("/events", h.Events.CreateEvent)
			admin.DELETE("/events/:id", h.Events.DeleteEvent)

			admin.POST("/notify-category", h.Events.NotifyCategory)
			admin.POST("/notify-users", h.Events.NotifyUsers)
		}
	}

	// Static pages live outside this service; mount them when deployed
	// alongside.
	if info, err := os.Stat("web"); err == nil && info.IsDir() {
		router.Static("/static", "web")
		logger.Info("serving static assets from ./web")
	}
}
