package repositories_test

import (
	"testing"
	"time"

	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepository_CreateNormalizesExpertise(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)

	app := &models.PartnerApplication{
		PartnerName:      "P",
		OrganizationName: "O",
		Email:            "norm@test.test",
		Expertise:        []string{"  cloud ", "", "security", "   "},
	}
	require.NoError(t, repo.Create(app))
	assert.Equal(t, []string{"cloud", "security"}, []string(app.Expertise))
	assert.Equal(t, models.ApplicationStatusPending, app.ApplicationStatus)
}

func TestApplicationRepository_ListFilterAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)

	base := time.Now().Add(-time.Hour)
	oldest := createApplication(t, db, "a@t.test", models.ApplicationStatusPending, base)
	approved := createApplication(t, db, "b@t.test", models.ApplicationStatusApproved, base.Add(time.Minute))
	newest := createApplication(t, db, "c@t.test", models.ApplicationStatusPending, base.Add(2*time.Minute))

	all, err := repo.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, newest.ID, all[0].ID)
	assert.Equal(t, approved.ID, all[1].ID)
	assert.Equal(t, oldest.ID, all[2].ID)

	all, err = repo.List("all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := repo.List(models.ApplicationStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, newest.ID, pending[0].ID)
	assert.Equal(t, oldest.ID, pending[1].ID)

	count, err := repo.CountByStatus(models.ApplicationStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestApplicationRepository_FindApprovedByEmailPicksNewest(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)

	base := time.Now().Add(-time.Hour)
	createApplication(t, db, "multi@t.test", models.ApplicationStatusApproved, base)
	latest := createApplication(t, db, "multi@t.test", models.ApplicationStatusApproved, base.Add(time.Minute))
	createApplication(t, db, "multi@t.test", models.ApplicationStatusRejected, base.Add(2*time.Minute))

	found, err := repo.FindApprovedByEmail("multi@t.test")
	require.NoError(t, err)
	assert.Equal(t, latest.ID, found.ID)

	_, err = repo.FindApprovedByEmail("absent@t.test")
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}

func TestApplicationRepository_FindApprovedByEmailIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)

	// Applications keep the address as submitted; the lookup has to match
	// against lower-cased user rows anyway.
	app := createApplication(t, db, "Mixed@Case.Test", models.ApplicationStatusApproved, time.Now())

	found, err := repo.FindApprovedByEmail("mixed@case.test")
	require.NoError(t, err)
	assert.Equal(t, app.ID, found.ID)

	found, err = repo.FindApprovedByEmail("MIXED@CASE.TEST")
	require.NoError(t, err)
	assert.Equal(t, app.ID, found.ID)
}

func TestApplicationRepository_UpdateReviewIsUnconditional(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)
	reviewer := createUser(t, db, "rev@t.test", models.UserRoleAdmin)

	app := createApplication(t, db, "u@t.test", models.ApplicationStatusPending, time.Now())

	require.NoError(t, repo.UpdateReview(app.ID, models.ApplicationStatusApproved, reviewer.ID, "ok", time.Now()))

	// A second write overwrites the first; the last review wins.
	require.NoError(t, repo.UpdateReview(app.ID, models.ApplicationStatusRejected, reviewer.ID, "changed my mind", time.Now()))

	got, err := repo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, got.ApplicationStatus)
	assert.Equal(t, "changed my mind", got.ReviewNotes)
	require.NotNil(t, got.ReviewerID)
	assert.Equal(t, reviewer.ID, *got.ReviewerID)

	err = repo.UpdateReview(99999, models.ApplicationStatusApproved, reviewer.ID, "", time.Now())
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}
