package repositories

import (
	"errors"

	"techmista_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResetTokenNotFound = errors.New("reset token not found")

type ResetTokenRepository interface {
	// Replace deletes any prior tokens for the user and inserts token,
	// keeping the at-most-one-live-token invariant.
	Replace(token *models.PasswordResetToken) error
	FindByToken(token string) (*models.PasswordResetToken, error)
	Delete(token string) error
	CountForUser(userID uint) (int64, error)
}

type ResetTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &ResetTokenRepositoryImpl{db: db}
}

func (r *ResetTokenRepositoryImpl) Replace(token *models.PasswordResetToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).
			Delete(&models.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *ResetTokenRepositoryImpl) FindByToken(token string) (*models.PasswordResetToken, error) {
	var t models.PasswordResetToken
	if err := r.db.Where("token = ?", token).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ResetTokenRepositoryImpl) Delete(token string) error {
	return r.db.Where("token = ?", token).
		Delete(&models.PasswordResetToken{}).Error
}

func (r *ResetTokenRepositoryImpl) CountForUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PasswordResetToken{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
