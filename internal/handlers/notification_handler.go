package handlers

import (
	"net/http"
	"strconv"

	"techmista_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
	authMW              gin.HandlerFunc
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService, authMW gin.HandlerFunc) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		authMW:              authMW,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(h.authMW)
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.CountUnread)
		notifications.PUT("/:notificationId/read", h.MarkRead)
		notifications.PUT("/read-all", h.MarkAllRead)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	notifications, err := h.notificationService.List(userID, unreadOnly, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) CountUnread(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.CountUnread(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseIDParam(c, "notificationId")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(id, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
