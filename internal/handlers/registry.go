package handlers

// AppHandlers bundles the constructed handlers for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ApplicationHandler  *ApplicationHandler
	ProviderHandler     *ProviderHandler
	ContactHandler      *ContactHandler
	NotificationHandler *NotificationHandler
}
