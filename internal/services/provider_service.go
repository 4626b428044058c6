package services

import (
	"fmt"
	"strings"
	"time"

	"techmista_backend/internal/auth"
	"techmista_backend/internal/email"
	"techmista_backend/internal/logger"
	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"
	"techmista_backend/internal/services/dto"
	"techmista_backend/pkg/apperrors"
)

const resetTokenValidityApproval = 7 * 24 * time.Hour

// ProviderService materializes provider accounts and profiles from approved
// partner applications, and serves the provider directory.
type ProviderService interface {
	// CreateAccountWithResetToken creates a solution_provider user for an
	// approved applicant, with a generated password that is never surfaced
	// and a 7-day password-setup token. The returned URL is what the
	// applicant receives by mail.
	CreateAccountWithResetToken(emailAddr, name, organizationName string) (*dto.AccountCreationResult, error)

	// SetupProviderFromApplication upserts the provider profile for an
	// approved application. Keyed by user_id; safe to retry.
	SetupProviderFromApplication(userID, applicationID uint) (*dto.ProviderProfileResponse, error)

	// EnsureProfile guarantees the user has a profile row: returns the
	// existing one, materializes from an approved application matching the
	// user's email, or creates a minimal pending profile.
	EnsureProfile(userID uint) (*dto.ProviderProfileResponse, error)

	GetProvider(id uint) (*dto.ProviderProfileResponse, error)
	ListProviders(filter repositories.ProviderFilter) (*dto.ProviderListResponse, error)
}

type ProviderServiceImpl struct {
	providerRepo   repositories.ProviderRepository
	userRepo       repositories.UserRepository
	appRepo        repositories.ApplicationRepository
	resetTokenRepo repositories.ResetTokenRepository
	emailProvider  email.Provider
	appName        string
	baseURL        string
}

func NewProviderService(
	providerRepo repositories.ProviderRepository,
	userRepo repositories.UserRepository,
	appRepo repositories.ApplicationRepository,
	resetTokenRepo repositories.ResetTokenRepository,
	emailProvider email.Provider,
	appName string,
	baseURL string,
) ProviderService {
	return &ProviderServiceImpl{
		providerRepo:   providerRepo,
		userRepo:       userRepo,
		appRepo:        appRepo,
		resetTokenRepo: resetTokenRepo,
		emailProvider:  emailProvider,
		appName:        appName,
		baseURL:        baseURL,
	}
}

func (s *ProviderServiceImpl) CreateAccountWithResetToken(emailAddr, name, organizationName string) (*dto.AccountCreationResult, error) {
	// Accounts store lower-cased emails; login and reset lookups lower-case
	// their input, so a verbatim mixed-case address would be unreachable.
	emailAddr = strings.ToLower(emailAddr)

	username, err := generateUsername(emailAddr)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The generated password only satisfies the non-null column; the
	// account is activated through the reset-token flow.
	rawPassword, err := auth.GenerateRandomToken(16)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	passwordHash, err := auth.HashPassword(rawPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     username,
		Name:         name,
		Email:        emailAddr,
		PasswordHash: passwordHash,
		Role:         models.UserRoleProvider,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.AlreadyExistsError(err, "user",
				fmt.Sprintf("A user with email %s already exists", emailAddr))
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateRandomToken(32)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resetToken := &models.PasswordResetToken{
		UserID:  user.ID,
		Token:   token,
		Expires: time.Now().Add(resetTokenValidityApproval),
	}
	if err := s.resetTokenRepo.Replace(resetToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/users/reset-passwords/%s", s.baseURL, token)

	// Mail failure never rolls back the account; the reset URL is still
	// returned to the admin for manual delivery.
	msg, err := email.PasswordSetupEmail(s.appName, emailAddr, name, organizationName, resetURL)
	if err != nil {
		logger.Error("Failed to render password setup email", "error", err, "email", emailAddr)
	} else if err := s.emailProvider.Send(msg); err != nil {
		logger.Error("Failed to send password setup email", "error", err, "email", emailAddr)
	}

	return &dto.AccountCreationResult{
		UserID:   user.ID,
		ResetURL: resetURL,
	}, nil
}

func (s *ProviderServiceImpl) SetupProviderFromApplication(userID, applicationID uint) (*dto.ProviderProfileResponse, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ApplicationNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	if app.ApplicationStatus != models.ApplicationStatusApproved {
		return nil, apperrors.InvalidStatusError("provider",
			fmt.Sprintf("Application %d is not approved (status: %s)", applicationID, app.ApplicationStatus))
	}

	now := time.Now()
	profile := &models.ProviderProfile{
		UserID:             &userID,
		ApplicationID:      &app.ID,
		Name:               app.OrganizationName,
		Description:        app.Description,
		Email:              app.Email,
		Website:            app.Website,
		Phone:              app.Phone,
		RegionsServed:      models.DefaultRegions(),
		VerificationStatus: models.VerificationStatusApproved,
		ApprovedDate:       &now,
	}
	if err := s.providerRepo.Upsert(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Re-read so callers see the persisted row (the conflict path updates
	// an existing id, not the one on the literal we inserted).
	saved, err := s.providerRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProviderProfileResponse{
		Profile:         *saved,
		Expertise:       expertiseOf(app),
		FromApplication: true,
	}, nil
}

func (s *ProviderServiceImpl) EnsureProfile(userID uint) (*dto.ProviderProfileResponse, error) {
	profile, err := s.providerRepo.FindByUserID(userID)
	if err == nil {
		return &dto.ProviderProfileResponse{
			Profile:   *profile,
			Expertise: s.expertiseForProfile(profile),
		}, nil
	}
	if !apperrors.Is(err, repositories.ErrProviderNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFoundError(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	app, err := s.appRepo.FindApprovedByEmail(user.Email)
	if err == nil {
		resp, err := s.SetupProviderFromApplication(userID, app.ID)
		if err != nil {
			return nil, err
		}
		resp.IsNew = true
		return resp, nil
	}
	if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	// No application on record: every user still gets a minimal pending
	// profile after first access.
	minimal := &models.ProviderProfile{
		UserID:             &userID,
		Name:               user.Name,
		Email:              user.Email,
		RegionsServed:      models.DefaultRegions(),
		VerificationStatus: models.VerificationStatusPending,
	}
	if err := s.providerRepo.Create(minimal); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProviderProfileResponse{
		Profile:   *minimal,
		Expertise: []string{},
		IsNew:     true,
	}, nil
}

func (s *ProviderServiceImpl) GetProvider(id uint) (*dto.ProviderProfileResponse, error) {
	profile, err := s.providerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.NotFoundError(err, "provider", "Provider profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.ProviderProfileResponse{
		Profile:   *profile,
		Expertise: s.expertiseForProfile(profile),
	}, nil
}

func (s *ProviderServiceImpl) ListProviders(filter repositories.ProviderFilter) (*dto.ProviderListResponse, error) {
	profiles, total, err := s.providerRepo.ListApproved(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	providers := make([]dto.ProviderProfileResponse, 0, len(profiles))
	for i := range profiles {
		providers = append(providers, dto.ProviderProfileResponse{
			Profile:   profiles[i],
			Expertise: s.expertiseForProfile(&profiles[i]),
		})
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &dto.ProviderListResponse{
		Providers: providers,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// expertiseForProfile reads expertise from the profile's linked application.
// A missing link or a lookup failure yields an empty list, never an error.
func (s *ProviderServiceImpl) expertiseForProfile(profile *models.ProviderProfile) []string {
	if profile.ApplicationID == nil {
		return []string{}
	}
	app, err := s.appRepo.FindByID(*profile.ApplicationID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
			logger.Warn("Failed to load application for expertise lookup",
				"error", err, "application_id", *profile.ApplicationID)
		}
		return []string{}
	}
	return expertiseOf(app)
}

func expertiseOf(app *models.PartnerApplication) []string {
	if len(app.Expertise) == 0 {
		return []string{}
	}
	return append([]string{}, app.Expertise...)
}

// generateUsername derives a username from the email local part plus a random
// suffix. Collisions are avoided by randomness rather than lookup; the unique
// index is the final arbiter.
func generateUsername(emailAddr string) (string, error) {
	local := emailAddr
	if at := strings.Index(emailAddr, "@"); at > 0 {
		local = emailAddr[:at]
	}
	local = strings.ToLower(strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '.' {
			return r
		}
		return -1
	}, local))
	if local == "" {
		local = "partner"
	}

	suffix, err := auth.GenerateRandomToken(2)
	if err != nil {
		return "", err
	}
	return local + "_" + suffix, nil
}
