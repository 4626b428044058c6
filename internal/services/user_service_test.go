package services_test

import (
	"testing"

	"techmista_backend/internal/models"
	"techmista_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_SetActive(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createAdmin(t)
	user := env.createSeeker(t, "target@example.test")

	require.NoError(t, env.Users.SetActive(admin.ID, user.ID, false))

	got, err := env.Users.Get(user.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, env.Users.SetActive(admin.ID, user.ID, true))
	got, err = env.Users.Get(user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestUserService_SetActiveSelfForbidden(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createAdmin(t)

	err := env.Users.SetActive(admin.ID, admin.ID, false)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// The admin stays active.
	got, err := env.Users.Get(admin.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestUserService_ListByRole(t *testing.T) {
	env := newTestEnv(t)
	env.createAdmin(t)
	env.createSeeker(t, "one@example.test")
	env.createSeeker(t, "two@example.test")

	seekers, err := env.Users.List(models.UserRoleSeeker, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), seekers.Total)
	assert.Len(t, seekers.Users, 2)

	everyone, err := env.Users.List("", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), everyone.Total)

	paged, err := env.Users.List("", 1, 2)
	require.NoError(t, err)
	assert.Len(t, paged.Users, 2)
	assert.Equal(t, int64(3), paged.Total)
}
