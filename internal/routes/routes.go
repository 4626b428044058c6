package routes

import (
	"net/http"

	"techmista_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the HTTP API under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.ProviderHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}
}
