package services

import (
	"time"

	"techmista_backend/internal/logger"
	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"
	"techmista_backend/internal/services/dto"
	"techmista_backend/pkg/apperrors"
)

// ApplicationService owns partner-application intake and the admin review
// workflow. Approval triggers account and profile materialization through
// the provider service.
type ApplicationService interface {
	Submit(req *dto.SubmitApplicationRequest) (*models.PartnerApplication, error)

	// List returns applications filtered by status ("", "all" → everything),
	// newest-first. Query failures are logged and produce an empty list;
	// this surface never propagates storage errors.
	List(status models.ApplicationStatus) []models.PartnerApplication

	Get(id uint) (*models.PartnerApplication, error)

	// Review applies the status transition. There is no guard against
	// re-review: the write is unconditional and concurrent reviews are
	// last-write-wins. On approval the account/profile materialization runs
	// after the status write has committed; if it fails, the returned error
	// says so explicitly and the status change remains in place.
	Review(reviewerID, applicationID uint, req *dto.ReviewApplicationRequest) (*dto.ReviewApplicationResult, error)
}

type ApplicationServiceImpl struct {
	appRepo         repositories.ApplicationRepository
	providerService ProviderService
	notifications   NotificationService
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	providerService ProviderService,
	notifications NotificationService,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:         appRepo,
		providerService: providerService,
		notifications:   notifications,
	}
}

func (s *ApplicationServiceImpl) Submit(req *dto.SubmitApplicationRequest) (*models.PartnerApplication, error) {
	app := &models.PartnerApplication{
		PartnerName:       req.PartnerName,
		OrganizationName:  req.OrganizationName,
		Email:             req.Email,
		Phone:             req.Phone,
		Website:           req.Website,
		Expertise:         req.Expertise,
		Description:       req.Description,
		Designation:       req.Designation,
		ExperienceYears:   req.ExperienceYears,
		Reason:            req.Reason,
		AdditionalNotes:   req.AdditionalNotes,
		ApplicationStatus: models.ApplicationStatusPending,
	}

	if err := s.appRepo.Create(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifications.NotifyAdminsApplicationReceived(app)

	return app, nil
}

func (s *ApplicationServiceImpl) List(status models.ApplicationStatus) []models.PartnerApplication {
	apps, err := s.appRepo.List(status)
	if err != nil {
		logger.Error("Failed to list applications", "error", err, "status", status)
		return []models.PartnerApplication{}
	}
	return apps
}

func (s *ApplicationServiceImpl) Get(id uint) (*models.PartnerApplication, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ApplicationNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) Review(reviewerID, applicationID uint, req *dto.ReviewApplicationRequest) (*dto.ReviewApplicationResult, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.ValidReviewStatus(status) {
		return nil, apperrors.InvalidStatusError("application",
			"Review status must be 'approved' or 'rejected'")
	}

	// The approval path needs the applicant's data before any write, so a
	// missing application fails here without touching the row.
	var app *models.PartnerApplication
	if status == models.ApplicationStatusApproved {
		var err error
		app, err = s.appRepo.FindByID(applicationID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrApplicationNotFound) {
				return nil, apperrors.ApplicationNotFound()
			}
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.appRepo.UpdateReview(applicationID, status, reviewerID, req.ReviewNotes, time.Now()); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ApplicationNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if status == models.ApplicationStatusRejected {
		s.notifications.NotifyAdminsApplicationReviewed(applicationID, status)
		return &dto.ReviewApplicationResult{Success: true}, nil
	}

	// The status write above has already committed. From here on, failures
	// are partial: the application stays approved and the admin is told
	// which dependent effect is missing so it can be reconciled manually.
	account, err := s.providerService.CreateAccountWithResetToken(app.Email, app.PartnerName, app.OrganizationName)
	if err != nil {
		logger.Error("Application approved but account creation failed; manual reconciliation needed",
			"application_id", applicationID, "email", app.Email, "error", err)
		return nil, apperrors.ApprovedButUserFailed(err)
	}

	if _, err := s.providerService.SetupProviderFromApplication(account.UserID, applicationID); err != nil {
		logger.Error("Application approved but profile materialization failed; manual reconciliation needed",
			"application_id", applicationID, "user_id", account.UserID, "error", err)
		return nil, apperrors.PartialFailureError(err, "application",
			"Application approved and user created, but failed to create provider profile: "+err.Error())
	}

	s.notifications.NotifyAdminsApplicationReviewed(applicationID, status)

	return &dto.ReviewApplicationResult{
		Success:  true,
		ResetURL: account.ResetURL,
	}, nil
}
