package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"techmista_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.RefreshToken{},
		&models.PartnerApplication{},
		&models.ProviderProfile{},
		&models.ContactRequest{},
		&models.Notification{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, emailAddr string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Username:     fmt.Sprintf("u_%d", dbCounter.Add(1)),
		Name:         "Test User",
		Email:        emailAddr,
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createApplication(t *testing.T, db *gorm.DB, emailAddr string, status models.ApplicationStatus, at time.Time) *models.PartnerApplication {
	t.Helper()
	app := &models.PartnerApplication{
		PartnerName:       "Partner",
		OrganizationName:  "Org",
		Email:             emailAddr,
		ApplicationStatus: status,
	}
	app.CreatedAt = at
	require.NoError(t, db.Create(app).Error)
	return app
}
