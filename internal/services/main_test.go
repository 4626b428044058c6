package services_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"techmista_backend/internal/auth"
	"techmista_backend/internal/email"
	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"
	"techmista_backend/internal/services"
	"techmista_backend/internal/services/dto"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// capturingEmailProvider records every message instead of dialing SMTP.
type capturingEmailProvider struct {
	mu   sync.Mutex
	sent []*email.Email
}

func (p *capturingEmailProvider) Send(msg *email.Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, msg)
	return nil
}

func (p *capturingEmailProvider) Validate() error { return nil }
func (p *capturingEmailProvider) Close() error    { return nil }

func (p *capturingEmailProvider) Sent() []*email.Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*email.Email, len(p.sent))
	copy(out, p.sent)
	return out
}

// testEnv wires the full service graph onto an in-memory database, the same
// way app.SetupRouter does against Postgres.
type testEnv struct {
	DB     *gorm.DB
	Email  *capturingEmailProvider
	Tokens *auth.TokenManager

	UserRepo         repositories.UserRepository
	ResetTokenRepo   repositories.ResetTokenRepository
	RefreshTokenRepo repositories.RefreshTokenRepository
	ApplicationRepo  repositories.ApplicationRepository
	ProviderRepo     repositories.ProviderRepository
	ContactRepo      repositories.ContactRequestRepository
	NotificationRepo repositories.NotificationRepository

	Auth          services.AuthService
	Users         services.UserService
	Applications  services.ApplicationService
	Providers     services.ProviderService
	Contacts      services.ContactService
	Notifications services.NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Each test gets its own named in-memory database; cache=shared keeps
	// it visible across the pooled connections GORM opens.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName(t))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.RefreshToken{},
		&models.PartnerApplication{},
		&models.ProviderProfile{},
		&models.ContactRequest{},
		&models.Notification{},
	))

	mail := &capturingEmailProvider{}
	tokens := auth.NewTokenManager("test-secret", 60)

	env := &testEnv{
		DB:     db,
		Email:  mail,
		Tokens: tokens,

		UserRepo:         repositories.NewUserRepository(db),
		ResetTokenRepo:   repositories.NewResetTokenRepository(db),
		RefreshTokenRepo: repositories.NewRefreshTokenRepository(db),
		ApplicationRepo:  repositories.NewApplicationRepository(db),
		ProviderRepo:     repositories.NewProviderRepository(db),
		ContactRepo:      repositories.NewContactRequestRepository(db),
		NotificationRepo: repositories.NewNotificationRepository(db),
	}

	env.Notifications = services.NewNotificationService(env.NotificationRepo, env.UserRepo)
	env.Auth = services.NewAuthService(env.UserRepo, env.ResetTokenRepo, env.RefreshTokenRepo, mail, tokens, "Tech Mista", "http://localhost:3000")
	env.Users = services.NewUserService(env.UserRepo)
	env.Providers = services.NewProviderService(env.ProviderRepo, env.UserRepo, env.ApplicationRepo, env.ResetTokenRepo, mail, "Tech Mista", "http://localhost:3000")
	env.Applications = services.NewApplicationService(env.ApplicationRepo, env.Providers, env.Notifications)
	env.Contacts = services.NewContactService(env.ContactRepo, env.ProviderRepo, env.UserRepo, env.Notifications, mail, "Tech Mista")

	return env
}

func (env *testEnv) createAdmin(t *testing.T) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("admin-password-1")
	require.NoError(t, err)
	admin := &models.User{
		Username:     "admin",
		Name:         "Admin",
		Email:        "admin@techmista.test",
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, env.UserRepo.Create(admin))
	return admin
}

func (env *testEnv) createSeeker(t *testing.T, emailAddr string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("seeker-password-1")
	require.NoError(t, err)
	user := &models.User{
		Username:     fmt.Sprintf("seeker_%s", emailAddr[:3]),
		Name:         "Seeker",
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         models.UserRoleSeeker,
		IsActive:     true,
	}
	require.NoError(t, env.UserRepo.Create(user))
	return user
}

var dbCounter atomic.Int64

func dbName(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("svc_test_%d", dbCounter.Add(1))
}

func submitRequest(emailAddr, org, partner string, expertise ...string) *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		PartnerName:      partner,
		OrganizationName: org,
		Email:            emailAddr,
		Expertise:        expertise,
		Description:      "We build things",
	}
}

func (env *testEnv) submitApplication(t *testing.T, emailAddr, org, partner string, expertise ...string) *models.PartnerApplication {
	t.Helper()
	app, err := env.Applications.Submit(submitRequest(emailAddr, org, partner, expertise...))
	require.NoError(t, err)
	return app
}
