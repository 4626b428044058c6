package repositories_test

import (
	"testing"
	"time"

	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderRepository_UpsertKeyedByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProviderRepository(db)
	user := createUser(t, db, "prov@t.test", models.UserRoleProvider)

	appID := uint(11)
	first := &models.ProviderProfile{
		UserID:             &user.ID,
		ApplicationID:      &appID,
		Name:               "Old Name",
		Email:              "prov@t.test",
		RegionsServed:      models.DefaultRegions(),
		VerificationStatus: models.VerificationStatusApproved,
	}
	require.NoError(t, repo.Upsert(first))

	newAppID := uint(12)
	now := time.Now()
	second := &models.ProviderProfile{
		UserID:             &user.ID,
		ApplicationID:      &newAppID,
		Name:               "New Name",
		Email:              "prov@t.test",
		RegionsServed:      models.DefaultRegions(),
		VerificationStatus: models.VerificationStatusApproved,
		ApprovedDate:       &now,
	}
	require.NoError(t, repo.Upsert(second))

	// Still one row, carrying the fields of the later write.
	var count int64
	require.NoError(t, db.Model(&models.ProviderProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	require.NotNil(t, got.ApplicationID)
	assert.Equal(t, newAppID, *got.ApplicationID)
	assert.NotNil(t, got.ApprovedDate)
}

func TestProviderRepository_ListApprovedPagination(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProviderRepository(db)

	for i := 0; i < 3; i++ {
		user := createUser(t, db, "approved"+string(rune('a'+i))+"@t.test", models.UserRoleProvider)
		require.NoError(t, repo.Create(&models.ProviderProfile{
			UserID:             &user.ID,
			Name:               "Approved",
			Email:              user.Email,
			RegionsServed:      models.DefaultRegions(),
			VerificationStatus: models.VerificationStatusApproved,
		}))
	}
	pendingUser := createUser(t, db, "pending@t.test", models.UserRoleProvider)
	require.NoError(t, repo.Create(&models.ProviderProfile{
		UserID:             &pendingUser.ID,
		Name:               "Hidden",
		Email:              pendingUser.Email,
		RegionsServed:      models.DefaultRegions(),
		VerificationStatus: models.VerificationStatusPending,
	}))

	profiles, total, err := repo.ListApproved(repositories.ProviderFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, profiles, 2)

	profiles, total, err = repo.ListApproved(repositories.ProviderFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, profiles, 1)

	all, err := repo.CountAll()
	require.NoError(t, err)
	assert.Equal(t, int64(4), all)
}

func TestProviderRepository_FindMissing(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProviderRepository(db)

	_, err := repo.FindByID(404)
	assert.ErrorIs(t, err, repositories.ErrProviderNotFound)
	_, err = repo.FindByUserID(404)
	assert.ErrorIs(t, err, repositories.ErrProviderNotFound)
}
