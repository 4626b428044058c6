package app

import (
	"fmt"

	"techmista_backend/database"
	"techmista_backend/internal/auth"
	"techmista_backend/internal/config"
	"techmista_backend/internal/email"
	"techmista_backend/internal/handlers"
	"techmista_backend/internal/logger"
	"techmista_backend/internal/middleware"
	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"
	"techmista_backend/internal/routes"
	"techmista_backend/internal/services"
	"techmista_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	appHandlers := initializeHandlers(serviceContainer, tokens)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP is not configured; outgoing mail is logged only")
		emailService = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	resetTokenRepo := repositories.NewResetTokenRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	providerRepo := repositories.NewProviderRepository(gormDB)
	contactRepo := repositories.NewContactRequestRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	authService := services.NewAuthService(userRepo, resetTokenRepo, refreshTokenRepo, emailService, tokens, cfg.App.Name, cfg.App.BaseURL)
	userService := services.NewUserService(userRepo)
	providerService := services.NewProviderService(providerRepo, userRepo, applicationRepo, resetTokenRepo, emailService, cfg.App.Name, cfg.App.BaseURL)
	applicationService := services.NewApplicationService(applicationRepo, providerService, notificationService)
	contactService := services.NewContactService(contactRepo, providerRepo, userRepo, notificationService, emailService, cfg.App.Name)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		ApplicationService:  applicationService,
		ProviderService:     providerService,
		ContactService:      contactService,
		NotificationService: notificationService,
		EmailService:        emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer, tokens *auth.TokenManager) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)
	authMW := middleware.AuthMiddleware(tokens)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService, authMW),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService, authMW),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, services.ApplicationService, authMW),
		ProviderHandler:     handlers.NewProviderHandler(baseHandler, services.ProviderService, authMW),
		ContactHandler:      handlers.NewContactHandler(baseHandler, services.ContactService, authMW),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService, authMW),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)
	return ginRouter
}

// seedFirstAdmin creates the configured admin account when no admin exists
// yet. Without it a fresh deployment has no way to review applications.
func seedFirstAdmin(gormDB *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin seed credentials not configured; skipping")
		return nil
	}

	var count int64
	if err := gormDB.Model(&models.User{}).
		Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}
	admin := &models.User{
		Username:     "admin",
		Name:         name,
		Email:        cfg.Admin.Email,
		PasswordHash: passwordHash,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := gormDB.Create(admin).Error; err != nil {
		return err
	}
	logger.Info("Seeded first admin user", "email", cfg.Admin.Email)
	return nil
}
