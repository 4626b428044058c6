package repositories_test

import (
	"testing"
	"time"

	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{
		Username: "orig", Name: "O", Email: "dup@t.test", PasswordHash: "x",
		Role: models.UserRoleSeeker, IsActive: true,
	}))

	err := repo.Create(&models.User{
		Username: "copy", Name: "C", Email: "dup@t.test", PasswordHash: "x",
		Role: models.UserRoleSeeker, IsActive: true,
	})
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)
}

func TestUserRepository_FindAllByRole(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	createUser(t, db, "adm@t.test", models.UserRoleAdmin)
	createUser(t, db, "s1@t.test", models.UserRoleSeeker)
	createUser(t, db, "s2@t.test", models.UserRoleSeeker)

	seekers, total, err := repo.FindAll(models.UserRoleSeeker, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, seekers, 2)

	everyone, total, err := repo.FindAll("", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, everyone, 2)
}

func TestUserRepository_SetActiveAndLastLogin(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)
	user := createUser(t, db, "act@t.test", models.UserRoleSeeker)

	require.NoError(t, repo.SetActive(user.ID, false))
	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	at := time.Now()
	require.NoError(t, repo.UpdateLastLogin(user.ID, at))
	got, err = repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, at, *got.LastLogin, time.Second)

	_, err = repo.FindByEmail("missing@t.test")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	_, err = repo.FindByUsername("missing")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
