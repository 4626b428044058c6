package services

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"techmista_backend/internal/auth"
	"techmista_backend/internal/email"
	"techmista_backend/internal/logger"
	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"
	"techmista_backend/internal/services/dto"
	"techmista_backend/pkg/apperrors"
)

const (
	resetTokenValidityRequest = time.Hour
	refreshTokenValidity      = 30 * 24 * time.Hour
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error

	// RequestPasswordReset issues a 1-hour reset token. Unknown emails are
	// reported as success so the endpoint cannot be used for enumeration.
	RequestPasswordReset(emailAddr string) error

	// ResetPassword consumes a token: the password is updated and the token
	// row deleted in one step. Invalid, expired and already-used tokens all
	// fail the same way.
	ResetPassword(token, newPassword string) error

	ChangePassword(userID uint, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	resetTokenRepo   repositories.ResetTokenRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
	tokens           *auth.TokenManager
	appName          string
	baseURL          string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	resetTokenRepo repositories.ResetTokenRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
	tokens *auth.TokenManager,
	appName string,
	baseURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		resetTokenRepo:   resetTokenRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
		tokens:           tokens,
		appName:          appName,
		baseURL:          baseURL,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role := models.UserRole(req.Role)
	if role != models.UserRoleSeeker && role != models.UserRoleAgent {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	username, err := generateUsername(req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     username,
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		logger.Warn("Failed to update last login", "error", err, "user_id", user.ID)
	}
	user.LastLogin = &now

	return s.issueTokenPair(user)
}

func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidToken, "auth",
				"Invalid or expired refresh token", http.StatusUnauthorized)
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.Delete(refreshToken)
		return nil, apperrors.New(apperrors.CodeTokenExpired, "auth",
			"Invalid or expired refresh token", http.StatusUnauthorized)
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	// Rotate: the old refresh token is spent.
	if err := s.refreshTokenRepo.Delete(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokenPair(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.refreshTokenRepo.Delete(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(strings.ToLower(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.Info("Password reset requested for unknown email", "email", emailAddr)
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := auth.GenerateRandomToken(32)
	if err != nil {
		return apperrors.InternalError(err)
	}
	resetToken := &models.PasswordResetToken{
		UserID:  user.ID,
		Token:   token,
		Expires: time.Now().Add(resetTokenValidityRequest),
	}
	if err := s.resetTokenRepo.Replace(resetToken); err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/users/reset-passwords/%s", s.baseURL, token)
	msg, err := email.PasswordResetEmail(s.appName, user.Email, user.Name, resetURL)
	if err != nil {
		logger.Error("Failed to render password reset email", "error", err, "user_id", user.ID)
		return nil
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.Error("Failed to send password reset email", "error", err, "user_id", user.ID)
	}
	return nil
}

func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	stored, err := s.resetTokenRepo.FindByToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}
	if stored.Expired(time.Now()) {
		return apperrors.ErrInvalidResetToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = passwordHash
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.resetTokenRepo.Delete(token); err != nil {
		// Password already changed; a stale token row is worse than a log
		// line but not worth failing the request over.
		logger.Error("Failed to delete consumed reset token", "error", err, "user_id", user.ID)
	}

	// Existing sessions were established under the old credential.
	if err := s.refreshTokenRepo.DeleteForUser(user.ID); err != nil {
		logger.Warn("Failed to revoke refresh tokens after password reset", "error", err, "user_id", user.ID)
	}
	return nil
}

func (s *AuthServiceImpl) ChangePassword(userID uint, currentPassword, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFoundError(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = passwordHash
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokenPair(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := auth.GenerateRandomToken(32)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.refreshTokenRepo.Create(&models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenValidity),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}
