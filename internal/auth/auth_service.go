package auth

import (
	"context"
	"errors"
	"time"

	autherrors "github.com/saxena100parth/codriva-hrms-sub002/internal/auth/errors"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/password"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/token"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, userID string) (*AuthResponse, error)

	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type Config struct {
	MaxFailedAttempts int
	LockDuration      time.Duration
	BcryptCost        int
}

type service struct {
	repo     Repository
	tokens   *token.Issuer
	notifier notification.Notifier
	cfg      Config
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, tokens *token.Issuer, notifier notification.Notifier, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if cfg.MaxFailedAttempts <= 0 {
		cfg.MaxFailedAttempts = 5
	}
	if cfg.LockDuration <= 0 {
		cfg.LockDuration = 15 * time.Minute
	}
	return &service{repo: repo, tokens: tokens, notifier: notifier, cfg: cfg, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, email, pw string) (string, string, AuthResponse, error) {
	// 1. Ambil user
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
			return "", "", AuthResponse{}, err
		}
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	now := s.now()
	if u.IsLocked(now) {
		s.logger.Warn("login on locked account", zap.String("user_id", u.ID.String()))
		return "", "", AuthResponse{}, autherrors.ErrAccountLocked
	}

	// 2. Verify password, hitung percobaan gagal
	if u.PasswordHash == nil || !password.Compare(*u.PasswordHash, pw) {
		return "", "", AuthResponse{}, s.recordFailedAttempt(ctx, u, now)
	}

	// 3. Hanya ACTIVE yang boleh login
	if u.Status != user.StatusActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	if u.FailedLoginAttempts > 0 || u.LockedUntil != nil {
		if err := s.repo.UpdateLoginState(ctx, u.ID, 0, nil); err != nil {
			s.logger.Error("reset login state failed", zap.String("user_id", u.ID.String()), zap.Error(err))
			return "", "", AuthResponse{}, err
		}
	}

	// 4. Generate token
	access, refresh, err := s.issuePair(u)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()))
	return access, refresh, toAuthResponse(u), nil
}

func (s *service) recordFailedAttempt(ctx context.Context, u *user.User, now time.Time) error {
	attempts := u.FailedLoginAttempts + 1
	var lockedUntil *time.Time
	result := autherrors.ErrInvalidCredentials

	if attempts >= s.cfg.MaxFailedAttempts {
		until := now.Add(s.cfg.LockDuration)
		lockedUntil = &until
		attempts = 0
		result = autherrors.ErrAccountLocked
		s.logger.Warn("account locked after failed attempts",
			zap.String("user_id", u.ID.String()),
			zap.Time("locked_until", until),
		)
	}

	if err := s.repo.UpdateLoginState(ctx, u.ID, attempts, lockedUntil); err != nil {
		s.logger.Error("persist failed login attempt failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return err
	}
	return result
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	claims, err := s.tokens.Parse(refreshToken)
	if err != nil || claims.Type != token.TypeRefresh {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}
	if u.Status != user.StatusActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	access, refresh, err := s.issuePair(u)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	return access, refresh, toAuthResponse(u), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := toAuthResponse(u)
	return &resp, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return autherrors.ErrUserNotFound
	}

	if u.PasswordHash == nil || !password.Compare(*u.PasswordHash, req.CurrentPassword) {
		return autherrors.ErrWrongPassword
	}
	if req.CurrentPassword == req.NewPassword {
		return autherrors.ErrSamePassword
	}
	if err := password.ValidateStrength(req.NewPassword); err != nil {
		return autherrors.ErrWeakPassword.WithDetails(err.Error())
	}

	hash, err := password.Hash(req.NewPassword, s.cfg.BcryptCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return err
	}

	now := s.now()
	if err := s.repo.UpdatePassword(ctx, u.ID, hash, false, now); err != nil {
		s.logger.Error("change password persist failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	s.logger.Info("change password success", zap.String("user_id", userID))

	if s.notifier != nil && u.Email() != "" {
		err := s.notifier.Notify(ctx, notification.Message{
			To:       u.Email(),
			Template: notification.TemplatePasswordChanged,
			Data: map[string]string{
				"name":       u.Name,
				"changed_at": now.UTC().Format(time.RFC1123),
			},
		})
		if err != nil {
			s.logger.Warn("password changed notification failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return nil
}

func (s *service) issuePair(u *user.User) (string, string, error) {
	sub := SubjectOf(u)
	access, err := s.tokens.Issue(sub, token.TypeAccess)
	if err != nil {
		s.logger.Error("issue access token failed", zap.Error(err))
		return "", "", autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.tokens.Issue(sub, token.TypeRefresh)
	if err != nil {
		s.logger.Error("issue refresh token failed", zap.Error(err))
		return "", "", autherrors.ErrTokenGenerationFailed
	}
	return access, refresh, nil
}

// SubjectOf membangun klaim token dari Person.
func SubjectOf(u *user.User) token.Subject {
	return token.Subject{
		UserID:           u.ID.String(),
		Role:             u.Role,
		Status:           u.Status,
		OnboardingStatus: u.OnboardingStatus,
	}
}

func toAuthResponse(u *user.User) AuthResponse {
	return AuthResponse{
		ID:                   u.ID.String(),
		Name:                 u.Name,
		Email:                u.Email(),
		Role:                 u.Role,
		Status:               u.Status,
		OnboardingStatus:     u.OnboardingStatus,
		EmployeeID:           u.EmployeeID,
		HasTemporaryPassword: u.HasTemporaryPassword,
	}
}
