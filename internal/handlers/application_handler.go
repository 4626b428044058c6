package handlers

import (
	"net/http"

	"techmista_backend/internal/middleware"
	"techmista_backend/internal/models"
	"techmista_backend/internal/services"
	"techmista_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	authMW             gin.HandlerFunc
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, authMW gin.HandlerFunc) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		authMW:             authMW,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public intake
	public := r.Group("/applications")
	{
		public.POST("", h.Submit)
	}

	// Admin review surface. Authorization fails closed before any handler
	// runs; non-admin callers never reach the store.
	admin := r.Group("/admin/applications")
	admin.Use(h.authMW, middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/:applicationId", h.Get)
		admin.PUT("/:applicationId/status", h.Review)
	}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Submit(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted",
		"application": app,
	})
}

func (h *ApplicationHandler) List(c *gin.Context) {
	status := models.ApplicationStatus(c.DefaultQuery("status", "all"))

	apps := h.applicationService.List(status)
	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"count":        len(apps),
	})
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "applicationId")
	if !ok {
		return
	}

	app, err := h.applicationService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Review(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseIDParam(c, "applicationId")
	if !ok {
		return
	}

	var req dto.ReviewApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.applicationService.Review(reviewerID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
