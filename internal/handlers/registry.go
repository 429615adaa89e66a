package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth          *AuthHandler
	Events        *EventHandler
	Notifications *NotificationHandler
	Registrations *RegistrationHandler
	Health        *HealthHandler
}
