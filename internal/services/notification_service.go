package services

import (
	"fmt"

	"techmista_backend/internal/logger"
	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"
	"techmista_backend/pkg/apperrors"
)

// NotificationService writes in-app notification rows. All Notify* methods
// are best-effort: failures are logged and never surface to the triggering
// operation.
type NotificationService interface {
	NotifyAdminsApplicationReceived(app *models.PartnerApplication)
	NotifyAdminsApplicationReviewed(applicationID uint, status models.ApplicationStatus)
	NotifyContactRequest(providerUserID uint, req *models.ContactRequest)

	List(userID uint, unreadOnly bool, limit int) ([]models.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
	CountUnread(userID uint) (int64, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *NotificationServiceImpl) NotifyAdminsApplicationReceived(app *models.PartnerApplication) {
	s.fanOutToAdmins(
		models.NotificationApplicationReceived,
		"New partner application",
		fmt.Sprintf("%s (%s) applied to become a solution provider", app.PartnerName, app.OrganizationName),
		map[string]any{"application_id": app.ID},
	)
}

func (s *NotificationServiceImpl) NotifyAdminsApplicationReviewed(applicationID uint, status models.ApplicationStatus) {
	s.fanOutToAdmins(
		models.NotificationApplicationReviewed,
		"Partner application reviewed",
		fmt.Sprintf("Application %d was %s", applicationID, status),
		map[string]any{"application_id": applicationID, "status": status},
	)
}

func (s *NotificationServiceImpl) NotifyContactRequest(providerUserID uint, req *models.ContactRequest) {
	n := &models.Notification{
		UserID:  providerUserID,
		Type:    models.NotificationContactRequest,
		Title:   "New contact request",
		Message: fmt.Sprintf("%s requested to get in touch", req.SeekerName),
	}
	if err := n.SetData(map[string]any{"contact_request_id": req.ID, "urgency": req.Urgency}); err != nil {
		logger.Warn("Failed to encode notification payload", "error", err)
	}
	if err := s.notificationRepo.Create(n); err != nil {
		logger.Error("Failed to create contact request notification", "error", err, "user_id", providerUserID)
	}
}

func (s *NotificationServiceImpl) fanOutToAdmins(ntype, title, message string, data map[string]any) {
	admins, _, err := s.userRepo.FindAll(models.UserRoleAdmin, 100, 0)
	if err != nil {
		logger.Error("Failed to load admins for notification fan-out", "error", err, "type", ntype)
		return
	}
	for _, admin := range admins {
		n := &models.Notification{
			UserID:  admin.ID,
			Type:    ntype,
			Title:   title,
			Message: message,
		}
		if err := n.SetData(data); err != nil {
			logger.Warn("Failed to encode notification payload", "error", err)
		}
		if err := s.notificationRepo.Create(n); err != nil {
			logger.Error("Failed to create admin notification", "error", err, "user_id", admin.ID)
		}
	}
}

func (s *NotificationServiceImpl) List(userID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListForUser(userID, unreadOnly, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

func (s *NotificationServiceImpl) MarkRead(id, userID uint) error {
	if err := s.notificationRepo.MarkRead(id, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NotFoundError(err, "notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(userID uint) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) CountUnread(userID uint) (int64, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
