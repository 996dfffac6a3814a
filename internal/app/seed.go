package app

import (
	"context"
	"strings"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/config"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/password"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// seedAdmin membuat ADMIN pertama supaya ada aktor yang bisa mengundang HR.
func seedAdmin(ctx context.Context, repo user.Repository, cfg config.AdminConfig, bcryptCost int, logger *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Email))
	if email == "" {
		return nil
	}
	log := logger.Named("app.seed")

	exists, err := repo.ExistsByEmailOrMobile(ctx, email, strings.TrimSpace(cfg.Mobile))
	if err != nil {
		return errors.Wrap(err, "check admin seed failed")
	}
	if exists {
		log.Debug("admin seed skipped, account exists", zap.String("email", email))
		return nil
	}

	hash, err := password.Hash(cfg.Password, bcryptCost)
	if err != nil {
		return errors.Wrap(err, "hash admin password failed")
	}

	name := cfg.Name
	if name == "" {
		name = "Administrator"
	}
	admin := &user.User{
		ID:               uuid.New(),
		Name:             name,
		PersonalEmail:    email,
		MobileNumber:     strings.TrimSpace(cfg.Mobile),
		Role:             user.RoleAdmin,
		Status:           user.StatusActive,
		OnboardingStatus: user.OnboardingCompleted,
		PasswordHash:     &hash,
	}
	admin.SetOfficialEmail(email)
	if err := admin.Validate(); err != nil {
		return err
	}
	if err := repo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "create admin seed failed")
	}

	log.Info("admin account seeded", zap.String("user_id", admin.ID.String()), zap.String("email", email))
	return nil
}
