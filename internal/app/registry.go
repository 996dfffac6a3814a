package app

import (
	"context"
	"database/sql"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/auth"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/bootstrap"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/config"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/holiday"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/leave"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/messaging/kafka"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/middleware"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/onboarding"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/otp"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/rbac"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/rbac/infra"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/counter"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/token"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb redis.Cmdable,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer("")
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}

	// --- Shared infra ---
	tokens := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL, cfg.JWT.OnboardingTTL)
	queued := notification.NewOutboxNotifier(outboxRepo, logger)
	notifiers := onboarding.Notifiers{Queued: queued}
	if cfg.SMTP.Host != "" {
		notifiers.Direct = notification.NewDirectNotifier(notification.NewSMTPMailer(smtpConfig(cfg), logger), logger)
	} else {
		logger.Warn("smtp is not configured, approved onboardings stay APPROVED until credentials can be mailed")
	}
	auditLogger := bootstrap.NewStdoutAuditLogger(logger)

	// --- Services ---
	authService := auth.NewService(authRepo, tokens, queued, auth.Config{
		MaxFailedAttempts: cfg.Auth.MaxFailedAttempts,
		LockDuration:      cfg.Auth.LockDuration,
		BcryptCost:        cfg.Auth.BcryptCost,
	}, logger)
	userService := user.NewService(db, userRepo, logger)
	holidayService := holiday.NewService(holidayRepo, rdb, cfg.Holiday.CacheTTL, logger)
	otpService := otp.NewService(otp.NewRedisStore(rdb), userRepo, queued, otp.Config{
		TTL: cfg.Onboarding.OTPTTL,
	}, logger)
	onboardingService := onboarding.NewService(db, userRepo, counterRepo, otpService, tokens, notifiers, auditLogger, onboarding.Config{
		InviteTTL:               cfg.Onboarding.InviteTTL,
		FrontendURL:             cfg.App.FrontendURL,
		HRNotificationEmail:     cfg.Onboarding.HRNotificationEmail,
		CompleteOnNotifyFailure: cfg.Onboarding.CompleteOnNotifyFailure,
		BcryptCost:              cfg.Auth.BcryptCost,
	}, logger)
	leaveService := leave.NewService(db, leaveRepo, holidayService, queued, leave.Config{
		DefaultBalances: cfg.Leave.DefaultBalances,
	}, logger)

	if err := seedAdmin(ctx, userRepo, cfg.Admin, cfg.Auth.BcryptCost, logger); err != nil {
		return err
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.IsProduction(),
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	}, logger)
	userHandler := user.NewHandler(userService, logger)
	holidayHandler := holiday.NewHandler(holidayService, logger)
	onboardingHandler := onboarding.NewHandler(onboardingService, logger)
	leaveHandler := leave.NewHandler(leaveService, rbacService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Middleware ---
	accessAuth := middleware.AuthMiddleware(tokens, token.TypeAccess)
	sessionAuth := middleware.AuthMiddleware(tokens, token.TypeOnboarding, token.TypeAccess)
	otpLimiter := middleware.OTPRateLimit(rdb, cfg.RateLimit.OTPLimit, cfg.RateLimit.OTPWindow, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, accessAuth, logger)
		onboarding.RegisterRoutes(api, onboardingHandler, rbacService, accessAuth, sessionAuth, otpLimiter, logger)
		user.RegisterRoutes(api, userHandler, rbacService, accessAuth, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, accessAuth, rdb, logger)
		holiday.RegisterRoutes(api, holidayHandler, rbacService, accessAuth, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, accessAuth, logger)
	}

	return nil
}

func smtpConfig(cfg *config.Config) notification.SMTPConfig {
	return notification.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		User:       cfg.SMTP.User,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		TLSEnabled: cfg.SMTP.TLSEnabled,
	}
}
