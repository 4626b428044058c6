package handlers

import (
	"net/http"
	"strconv"

	"techmista_backend/internal/middleware"
	"techmista_backend/internal/models"
	"techmista_backend/internal/services"
	"techmista_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	authMW      gin.HandlerFunc
}

func NewUserHandler(base *BaseHandler, userService services.UserService, authMW gin.HandlerFunc) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		authMW:      authMW,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/users/me")
	me.Use(h.authMW)
	{
		me.GET("", h.GetMe)
	}

	admin := r.Group("/admin/users")
	admin.Use(h.authMW, middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.PUT("/:userId/active", h.SetActive)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	role := models.UserRole(c.Query("role"))

	resp, err := h.userService.List(role, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) SetActive(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	userID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.SetUserActiveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.userService.SetActive(adminID, userID, *req.IsActive); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}
