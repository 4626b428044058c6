package handlers

import (
	"net/http"

	"techmista_backend/internal/services"
	"techmista_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	authMW      gin.HandlerFunc
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, authMW gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		authMW:      authMW,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/auth")
	{
		public.POST("/register", h.Register)
		public.POST("/login", h.Login)
		public.POST("/refresh", h.Refresh)
		public.POST("/logout", h.Logout)
		public.POST("/password-resets", h.RequestPasswordReset)
		public.POST("/password-resets/:token", h.ResetPassword)
	}

	protected := r.Group("/auth")
	protected.Use(h.authMW)
	{
		protected.POST("/change-password", h.ChangePassword)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestPasswordResetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Same answer whether or not the email exists.
	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(token, req.Password); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}
