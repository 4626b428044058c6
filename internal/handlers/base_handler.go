package handlers

import (
	"strconv"

	"techmista_backend/internal/logger"
	"techmista_backend/internal/validator"
	"techmista_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindAndValidate_JSON binds the JSON body and runs struct validation.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError maps a service error to the JSON error envelope.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"code", appErr.Code,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// GetAndAuthorizeUserID returns the authenticated caller's id, writing an
// unauthorized response when it is missing.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (uint, bool) {
	ctx := c.Request.Context()

	userIDVal, exists := c.Get("userID")
	if !exists {
		logger.CtxWarn(ctx, "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return 0, false
	}

	userID, ok := userIDVal.(uint)
	if !ok || userID == 0 {
		logger.CtxWarn(ctx, "Unauthorized access: invalid userID in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid user ID in context"))
		return 0, false
	}

	return userID, true
}

// ParseIDParam parses a positive integer path parameter.
func (h *BaseHandler) ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(id), true
}
