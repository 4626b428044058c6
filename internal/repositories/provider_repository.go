package repositories

import (
	"errors"

	"techmista_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProviderNotFound = errors.New("provider profile not found")

type ProviderFilter struct {
	Region   string
	Page     int
	PageSize int
}

type ProviderRepository interface {
	Create(profile *models.ProviderProfile) error
	// Upsert inserts the profile or, on a user_id conflict, updates the
	// materialized fields of the existing row. user_id is the single
	// canonical conflict target.
	Upsert(profile *models.ProviderProfile) error
	FindByID(id uint) (*models.ProviderProfile, error)
	FindByUserID(userID uint) (*models.ProviderProfile, error)
	ListApproved(filter ProviderFilter) ([]models.ProviderProfile, int64, error)
	CountAll() (int64, error)
}

type ProviderRepositoryImpl struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &ProviderRepositoryImpl{db: db}
}

func (r *ProviderRepositoryImpl) Create(profile *models.ProviderProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProviderRepositoryImpl) Upsert(profile *models.ProviderProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"application_id", "name", "description", "email", "website",
			"phone", "regions_served", "verification_status", "approved_date",
			"updated_at",
		}),
	}).Create(profile).Error
}

func (r *ProviderRepositoryImpl) FindByID(id uint) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	if err := r.db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProviderRepositoryImpl) FindByUserID(userID uint) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProviderRepositoryImpl) ListApproved(filter ProviderFilter) ([]models.ProviderProfile, int64, error) {
	var profiles []models.ProviderProfile
	var total int64

	query := r.db.Model(&models.ProviderProfile{}).
		Where("verification_status = ?", models.VerificationStatusApproved)
	if filter.Region != "" {
		query = query.Where("? = ANY(regions_served)", filter.Region)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *ProviderRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.ProviderProfile{}).Count(&count).Error
	return count, err
}
