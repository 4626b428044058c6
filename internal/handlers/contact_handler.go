package handlers

import (
	"net/http"

	"techmista_backend/internal/middleware"
	"techmista_backend/internal/models"
	"techmista_backend/internal/services"
	"techmista_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
	authMW         gin.HandlerFunc
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService, authMW gin.HandlerFunc) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
		authMW:         authMW,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	seeker := r.Group("/contact-requests")
	seeker.Use(h.authMW, middleware.RequireRoles(models.UserRoleSeeker, models.UserRoleAgent))
	{
		seeker.POST("", h.Create)
		seeker.GET("/my", h.ListMine)
	}

	provider := r.Group("/providers/me/contact-requests")
	provider.Use(h.authMW, middleware.RoleMiddleware(models.UserRoleProvider))
	{
		provider.GET("", h.ListForProvider)
		provider.PUT("/:requestId/read", h.MarkRead)
		provider.PUT("/:requestId/status", h.UpdateStatus)
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	seekerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateContactRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.Create(seekerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Contact request sent",
		"contact_request": contact,
	})
}

func (h *ContactHandler) ListMine(c *gin.Context) {
	seekerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reqs, err := h.contactService.ListForSeeker(seekerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact_requests": reqs})
}

func (h *ContactHandler) ListForProvider(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	status := models.ContactRequestStatus(c.DefaultQuery("status", "all"))
	reqs, err := h.contactService.ListForProviderUser(userID, status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact_requests": reqs})
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseIDParam(c, "requestId")
	if !ok {
		return
	}

	if err := h.contactService.MarkRead(userID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseIDParam(c, "requestId")
	if !ok {
		return
	}

	var req dto.UpdateContactStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.contactService.UpdateStatus(userID, id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
