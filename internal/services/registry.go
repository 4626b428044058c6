package services

import "techmista_backend/internal/email"

// ServiceContainer bundles the constructed services for handler wiring.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ApplicationService  ApplicationService
	ProviderService     ProviderService
	ContactService      ContactService
	NotificationService NotificationService
	EmailService        email.Provider
}
