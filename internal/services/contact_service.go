package services

import (
	"techmista_backend/internal/email"
	"techmista_backend/internal/logger"
	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"
	"techmista_backend/internal/services/dto"
	"techmista_backend/pkg/apperrors"
)

// ContactService handles seeker → provider inquiries.
type ContactService interface {
	Create(seekerID uint, req *dto.CreateContactRequestRequest) (*models.ContactRequest, error)
	ListForProviderUser(providerUserID uint, status models.ContactRequestStatus) ([]models.ContactRequest, error)
	ListForSeeker(seekerID uint) ([]models.ContactRequest, error)
	MarkRead(providerUserID, requestID uint) error
	UpdateStatus(providerUserID, requestID uint, req *dto.UpdateContactStatusRequest) error
}

type ContactServiceImpl struct {
	contactRepo   repositories.ContactRequestRepository
	providerRepo  repositories.ProviderRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
	emailProvider email.Provider
	appName       string
}

func NewContactService(
	contactRepo repositories.ContactRequestRepository,
	providerRepo repositories.ProviderRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
	emailProvider email.Provider,
	appName string,
) ContactService {
	return &ContactServiceImpl{
		contactRepo:   contactRepo,
		providerRepo:  providerRepo,
		userRepo:      userRepo,
		notifications: notifications,
		emailProvider: emailProvider,
		appName:       appName,
	}
}

func (s *ContactServiceImpl) Create(seekerID uint, req *dto.CreateContactRequestRequest) (*models.ContactRequest, error) {
	seeker, err := s.userRepo.FindByID(seekerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFoundError(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	provider, err := s.providerRepo.FindByID(req.ProviderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.NotFoundError(err, "provider", "Provider profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if provider.VerificationStatus != models.VerificationStatusApproved {
		return nil, apperrors.InvalidStatusError("contact",
			"Provider is not accepting contact requests")
	}

	contact := &models.ContactRequest{
		SeekerID:      seeker.ID,
		SeekerName:    seeker.Name,
		SeekerEmail:   seeker.Email,
		ProviderID:    provider.ID,
		ProviderName:  provider.Name,
		ProviderEmail: provider.Email,
		Requirements:  req.Requirements,
		PreferredDate: req.PreferredDate,
		TimeSlot:      req.TimeSlot,
		Urgency:       models.ContactUrgency(req.Urgency),
		Status:        models.ContactStatusPending,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if provider.UserID != nil {
		s.notifications.NotifyContactRequest(*provider.UserID, contact)
	}

	// Best-effort mail to the provider.
	msg, err := email.ContactRequestEmail(s.appName, provider.Email, email.ContactRequestData{
		ProviderName: provider.Name,
		SeekerName:   seeker.Name,
		SeekerEmail:  seeker.Email,
		Requirements: req.Requirements,
		Urgency:      string(contact.Urgency),
	})
	if err != nil {
		logger.Error("Failed to render contact request email", "error", err, "provider_id", provider.ID)
	} else if err := s.emailProvider.Send(msg); err != nil {
		logger.Error("Failed to send contact request email", "error", err, "provider_id", provider.ID)
	}

	return contact, nil
}

func (s *ContactServiceImpl) ListForProviderUser(providerUserID uint, status models.ContactRequestStatus) ([]models.ContactRequest, error) {
	profile, err := s.profileForUser(providerUserID)
	if err != nil {
		return nil, err
	}
	reqs, err := s.contactRepo.ListForProvider(profile.ID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reqs, nil
}

func (s *ContactServiceImpl) ListForSeeker(seekerID uint) ([]models.ContactRequest, error) {
	reqs, err := s.contactRepo.ListForSeeker(seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reqs, nil
}

func (s *ContactServiceImpl) MarkRead(providerUserID, requestID uint) error {
	if _, err := s.authorizeProviderRequest(providerUserID, requestID); err != nil {
		return err
	}
	if err := s.contactRepo.MarkRead(requestID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ContactServiceImpl) UpdateStatus(providerUserID, requestID uint, req *dto.UpdateContactStatusRequest) error {
	if _, err := s.authorizeProviderRequest(providerUserID, requestID); err != nil {
		return err
	}
	if err := s.contactRepo.UpdateStatus(requestID, models.ContactRequestStatus(req.Status), req.Notes); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ContactServiceImpl) profileForUser(userID uint) (*models.ProviderProfile, error) {
	profile, err := s.providerRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.NotFoundError(err, "provider", "Provider profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// authorizeProviderRequest checks that the contact request belongs to the
// caller's provider profile.
func (s *ContactServiceImpl) authorizeProviderRequest(providerUserID, requestID uint) (*models.ContactRequest, error) {
	profile, err := s.profileForUser(providerUserID)
	if err != nil {
		return nil, err
	}
	contact, err := s.contactRepo.FindByID(requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContactRequestNotFound) {
			return nil, apperrors.NotFoundError(err, "contact", "Contact request not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if contact.ProviderID != profile.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return contact, nil
}
