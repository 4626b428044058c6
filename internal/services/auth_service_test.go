package services_test

import (
	"strings"
	"testing"
	"time"

	"techmista_backend/internal/auth"
	"techmista_backend/internal/models"
	"techmista_backend/internal/services/dto"
	"techmista_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.Auth.Register(&dto.RegisterRequest{
		Name:     "Sam Seeker",
		Email:    "Sam@Example.Test",
		Password: "long-enough-1",
		Role:     "solution_seeker",
	})
	require.NoError(t, err)
	assert.Equal(t, "sam@example.test", resp.Email)
	assert.Equal(t, models.UserRoleSeeker, resp.Role)
	assert.True(t, strings.HasPrefix(resp.Username, "sam_"))

	login, err := env.Auth.Login(&dto.LoginRequest{
		Email:    "sam@example.test",
		Password: "long-enough-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)

	claims, err := env.Tokens.ParseToken(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, string(models.UserRoleSeeker), claims.Role)
}

func TestAuthService_RegisterRejectsPrivilegedRoles(t *testing.T) {
	env := newTestEnv(t)

	for _, role := range []string{"admin", "solution_provider", "nonsense", ""} {
		_, err := env.Auth.Register(&dto.RegisterRequest{
			Name:     "Eve",
			Email:    "eve@example.test",
			Password: "long-enough-1",
			Role:     role,
		})
		require.Error(t, err, "role %q must not self-register", role)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidUserRole))
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createSeeker(t, "taken@example.test")

	_, err := env.Auth.Register(&dto.RegisterRequest{
		Name:     "Copycat",
		Email:    "taken@example.test",
		Password: "long-enough-1",
		Role:     "solution_seeker",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestAuthService_LoginFailures(t *testing.T) {
	env := newTestEnv(t)
	user := env.createSeeker(t, "locked@example.test")

	_, err := env.Auth.Login(&dto.LoginRequest{Email: "nobody@example.test", Password: "whatever-123"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))

	_, err = env.Auth.Login(&dto.LoginRequest{Email: "locked@example.test", Password: "wrong-password"})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))

	require.NoError(t, env.UserRepo.SetActive(user.ID, false))
	_, err = env.Auth.Login(&dto.LoginRequest{Email: "locked@example.test", Password: "seeker-password-1"})
	assert.True(t, apperrors.Is(err, apperrors.ErrAccountInactive))
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	env := newTestEnv(t)
	env.createSeeker(t, "rot@example.test")

	login, err := env.Auth.Login(&dto.LoginRequest{Email: "rot@example.test", Password: "seeker-password-1"})
	require.NoError(t, err)

	refreshed, err := env.Auth.Refresh(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old refresh token is spent.
	_, err = env.Auth.Refresh(login.RefreshToken)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
}

func TestAuthService_RequestPasswordResetKeepsOneLiveToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.createSeeker(t, "reset@example.test")

	require.NoError(t, env.Auth.RequestPasswordReset("reset@example.test"))
	require.NoError(t, env.Auth.RequestPasswordReset("reset@example.test"))

	count, err := env.ResetTokenRepo.CountForUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "re-requesting replaces the previous token")

	var stored models.PasswordResetToken
	require.NoError(t, env.DB.Where("user_id = ?", user.ID).First(&stored).Error)
	assert.True(t, stored.Expires.Before(time.Now().Add(2*time.Hour)), "request tokens expire within an hour")

	// Two request mails went out, the second with the surviving token.
	sent := env.Email.Sent()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[1].HTMLBody, stored.Token)
}

func TestAuthService_RequestPasswordResetUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	// Unknown addresses report success and leave no trace.
	require.NoError(t, env.Auth.RequestPasswordReset("ghost@example.test"))
	assert.Empty(t, env.Email.Sent())

	var count int64
	require.NoError(t, env.DB.Model(&models.PasswordResetToken{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAuthService_ResetPasswordConsumesToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.createSeeker(t, "once@example.test")
	require.NoError(t, env.Auth.RequestPasswordReset("once@example.test"))

	var stored models.PasswordResetToken
	require.NoError(t, env.DB.Where("user_id = ?", user.ID).First(&stored).Error)

	require.NoError(t, env.Auth.ResetPassword(stored.Token, "brand-new-pass-1"))

	// New password works, token row is gone, reuse fails.
	_, err := env.Auth.Login(&dto.LoginRequest{Email: "once@example.test", Password: "brand-new-pass-1"})
	require.NoError(t, err)

	count, err := env.ResetTokenRepo.CountForUser(user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = env.Auth.ResetPassword(stored.Token, "another-pass-123")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidResetToken))
}

func TestAuthService_ResetPasswordExpiredToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.createSeeker(t, "stale@example.test")

	token, err := auth.GenerateRandomToken(32)
	require.NoError(t, err)
	require.NoError(t, env.ResetTokenRepo.Replace(&models.PasswordResetToken{
		UserID:  user.ID,
		Token:   token,
		Expires: time.Now().Add(-time.Minute),
	}))

	err = env.Auth.ResetPassword(token, "brand-new-pass-1")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidResetToken))
}

func TestAuthService_ResetPasswordRevokesSessions(t *testing.T) {
	env := newTestEnv(t)
	user := env.createSeeker(t, "revoke@example.test")

	login, err := env.Auth.Login(&dto.LoginRequest{Email: "revoke@example.test", Password: "seeker-password-1"})
	require.NoError(t, err)

	require.NoError(t, env.Auth.RequestPasswordReset("revoke@example.test"))
	var stored models.PasswordResetToken
	require.NoError(t, env.DB.Where("user_id = ?", user.ID).First(&stored).Error)
	require.NoError(t, env.Auth.ResetPassword(stored.Token, "brand-new-pass-1"))

	_, err = env.Auth.Refresh(login.RefreshToken)
	require.Error(t, err, "refresh tokens issued before the reset are revoked")
}

func TestAuthService_ResetPasswordWeak(t *testing.T) {
	env := newTestEnv(t)

	err := env.Auth.ResetPassword("irrelevant", "short")
	assert.True(t, apperrors.Is(err, apperrors.ErrWeakPassword))
}

func TestAuthService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.createSeeker(t, "change@example.test")

	err := env.Auth.ChangePassword(user.ID, "wrong-current", "brand-new-pass-1")
	require.Error(t, err)

	require.NoError(t, env.Auth.ChangePassword(user.ID, "seeker-password-1", "brand-new-pass-1"))
	_, err = env.Auth.Login(&dto.LoginRequest{Email: "change@example.test", Password: "brand-new-pass-1"})
	require.NoError(t, err)
}
