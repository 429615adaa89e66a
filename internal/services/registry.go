package services

// Container groups the constructed services for wiring and shutdown.
type Container struct {
	Auth          AuthService
	Events        EventService
	Notifications NotificationService
	Registrations RegistrationService
	Broadcast     BroadcastService
}
