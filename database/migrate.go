package database

import (
	"techmista_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs GORM auto-migration for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.RefreshToken{},
		&models.PartnerApplication{},
		&models.ProviderProfile{},
		&models.ContactRequest{},
		&models.Notification{},
	)
}
