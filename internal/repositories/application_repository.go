package repositories

import (
	"errors"
	"time"

	"techmista_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(app *models.PartnerApplication) error
	FindByID(id uint) (*models.PartnerApplication, error)
	// List returns applications newest-first. An empty or "all" status
	// returns everything; otherwise the status is matched exactly.
	List(status models.ApplicationStatus) ([]models.PartnerApplication, error)
	FindApprovedByEmail(email string) (*models.PartnerApplication, error)
	// UpdateReview writes the review fields unconditionally; there is no
	// state-machine guard and concurrent reviews are last-write-wins.
	UpdateReview(id uint, status models.ApplicationStatus, reviewerID uint, notes string, reviewedAt time.Time) error
	CountByStatus(status models.ApplicationStatus) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.PartnerApplication) error {
	app.Expertise = models.NormalizeExpertise(app.Expertise)
	if app.ApplicationStatus == "" {
		app.ApplicationStatus = models.ApplicationStatusPending
	}
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id uint) (*models.PartnerApplication, error) {
	var app models.PartnerApplication
	if err := r.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) List(status models.ApplicationStatus) ([]models.PartnerApplication, error) {
	var apps []models.PartnerApplication
	query := r.db.Model(&models.PartnerApplication{})
	if status != "" && status != "all" {
		query = query.Where("application_status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) FindApprovedByEmail(email string) (*models.PartnerApplication, error) {
	var app models.PartnerApplication
	// Applications keep the address as submitted while user rows are
	// lower-cased, so the match must be case-insensitive.
	err := r.db.Where("LOWER(email) = LOWER(?) AND application_status = ?", email, models.ApplicationStatusApproved).
		Order("created_at DESC").First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) UpdateReview(id uint, status models.ApplicationStatus, reviewerID uint, notes string, reviewedAt time.Time) error {
	res := r.db.Model(&models.PartnerApplication{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"application_status": status,
			"reviewer_id":        reviewerID,
			"review_notes":       notes,
			"reviewed_at":        reviewedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByStatus(status models.ApplicationStatus) (int64, error) {
	var count int64
	query := r.db.Model(&models.PartnerApplication{})
	if status != "" && status != "all" {
		query = query.Where("application_status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}
