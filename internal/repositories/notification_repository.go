package repositories

import (
	"errors"

	"techmista_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(n *models.Notification) error
	ListForUser(userID uint, unreadOnly bool, limit int) ([]models.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
	CountUnread(userID uint) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepositoryImpl) ListForUser(userID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	if limit < 1 || limit > 200 {
		limit = 50
	}
	query := r.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	if err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepositoryImpl) MarkRead(id, userID uint) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

func (r *NotificationRepositoryImpl) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}
