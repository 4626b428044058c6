package dto

import "techmista_backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
	Role     string `json:"role" binding:"required" validate:"required,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint            `json:"id"`
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	IsActive bool            `json:"is_active"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required" validate:"required"`
	NewPassword     string `json:"new_password" binding:"required" validate:"required,min=8"`
}
