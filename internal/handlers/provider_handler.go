package handlers

import (
	"net/http"
	"strconv"

	"techmista_backend/internal/repositories"
	"techmista_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	*BaseHandler
	providerService services.ProviderService
	authMW          gin.HandlerFunc
}

func NewProviderHandler(base *BaseHandler, providerService services.ProviderService, authMW gin.HandlerFunc) *ProviderHandler {
	return &ProviderHandler{
		BaseHandler:     base,
		providerService: providerService,
		authMW:          authMW,
	}
}

func (h *ProviderHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public directory
	public := r.Group("/providers")
	{
		public.GET("", h.List)
		public.GET("/:providerId", h.Get)
	}

	// Self surface for any authenticated user. GET /providers/me is the
	// explicit ensure-profile contract: it creates a minimal pending
	// profile row on first access when no approved application exists.
	me := r.Group("/providers/me")
	me.Use(h.authMW)
	{
		me.GET("", h.EnsureProfile)
	}
}

func (h *ProviderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.providerService.ListProviders(repositories.ProviderFilter{
		Region:   c.Query("region"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "providerId")
	if !ok {
		return
	}

	resp, err := h.providerService.GetProvider(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProviderHandler) EnsureProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.providerService.EnsureProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
