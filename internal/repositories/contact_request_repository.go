package repositories

import (
	"errors"

	"techmista_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContactRequestNotFound = errors.New("contact request not found")

type ContactRequestRepository interface {
	Create(req *models.ContactRequest) error
	FindByID(id uint) (*models.ContactRequest, error)
	ListForProvider(providerID uint, status models.ContactRequestStatus) ([]models.ContactRequest, error)
	ListForSeeker(seekerID uint) ([]models.ContactRequest, error)
	MarkRead(id uint) error
	UpdateStatus(id uint, status models.ContactRequestStatus, notes string) error
	CountUnread(providerID uint) (int64, error)
}

type ContactRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRequestRepository(db *gorm.DB) ContactRequestRepository {
	return &ContactRequestRepositoryImpl{db: db}
}

func (r *ContactRequestRepositoryImpl) Create(req *models.ContactRequest) error {
	if req.Urgency == "" {
		req.Urgency = models.ContactUrgencyMedium
	}
	if req.Status == "" {
		req.Status = models.ContactStatusPending
	}
	return r.db.Create(req).Error
}

func (r *ContactRequestRepositoryImpl) FindByID(id uint) (*models.ContactRequest, error) {
	var req models.ContactRequest
	if err := r.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *ContactRequestRepositoryImpl) ListForProvider(providerID uint, status models.ContactRequestStatus) ([]models.ContactRequest, error) {
	var reqs []models.ContactRequest
	query := r.db.Where("provider_id = ?", providerID)
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *ContactRequestRepositoryImpl) ListForSeeker(seekerID uint) ([]models.ContactRequest, error) {
	var reqs []models.ContactRequest
	if err := r.db.Where("seeker_id = ?", seekerID).
		Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *ContactRequestRepositoryImpl) MarkRead(id uint) error {
	res := r.db.Model(&models.ContactRequest{}).Where("id = ?", id).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrContactRequestNotFound
	}
	return nil
}

func (r *ContactRequestRepositoryImpl) UpdateStatus(id uint, status models.ContactRequestStatus, notes string) error {
	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	res := r.db.Model(&models.ContactRequest{}).Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrContactRequestNotFound
	}
	return nil
}

func (r *ContactRequestRepositoryImpl) CountUnread(providerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactRequest{}).
		Where("provider_id = ? AND read = ?", providerID, false).
		Count(&count).Error
	return count, err
}
