package otp

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"
	otperrors "github.com/saxena100parth/codriva-hrms-sub002/internal/otp/errors"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"
	usererrors "github.com/saxena100parth/codriva-hrms-sub002/internal/user/errors"

	"go.uber.org/zap"
)

// PersonFinder dipenuhi oleh user.Repository.
type PersonFinder interface {
	FindByMobile(ctx context.Context, mobile string) (*user.User, error)
}

//go:generate mockgen -source=otp_service.go -destination=mock/otp_service_mock.go -package=mock
type Service interface {
	Issue(ctx context.Context, mobile string) (*IssueResult, error)
	Resend(ctx context.Context, mobile string) (*IssueResult, error)
	Verify(ctx context.Context, mobile, code string) error
}

type Config struct {
	TTL time.Duration
	// Grace menahan key di Redis setelah expiry agar verify masih bisa
	// membedakan kode kedaluwarsa dari kode yang tidak pernah ada.
	Grace       time.Duration
	MaxAttempts int
}

type service struct {
	store    Store
	persons  PersonFinder
	notifier notification.Notifier
	cfg      Config
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(store Store, persons PersonFinder, notifier notification.Notifier, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("otp.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("otp.service")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.Grace <= 0 {
		cfg.Grace = 10 * time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &service{store: store, persons: persons, notifier: notifier, cfg: cfg, now: time.Now, logger: l}
}

func (s *service) Issue(ctx context.Context, mobile string) (*IssueResult, error) {
	return s.issue(ctx, "issue", mobile)
}

// Resend mengganti challenge yang masih berjalan dengan kode baru.
func (s *service) Resend(ctx context.Context, mobile string) (*IssueResult, error) {
	return s.issue(ctx, "resend", mobile)
}

func (s *service) issue(ctx context.Context, op, mobile string) (*IssueResult, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil, otperrors.ErrMobileRequired
	}
	s.logger.Debug(op+" otp", zap.String("mobile_number", mobile))

	person, err := s.persons.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(user.MapRepositoryError(err), usererrors.ErrUserNotFound) {
			s.logger.Warn(op+" otp rejected: unknown mobile", zap.String("mobile_number", mobile))
			return nil, otperrors.ErrUserNotFound
		}
		s.logger.Error(op+" otp person lookup failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	if person.OnboardingStatus == user.OnboardingCompleted {
		s.logger.Warn(op+" otp rejected: onboarding completed", zap.String("user_id", person.ID.String()))
		return nil, otperrors.ErrOnboardingAlreadyCompleted
	}
	if person.InvitationExpired(now) {
		s.logger.Warn(op+" otp rejected: invitation expired", zap.String("user_id", person.ID.String()))
		return nil, otperrors.ErrInvitationExpired
	}

	secret, counter, err := newSecret()
	if err != nil {
		return nil, err
	}
	code, err := generateCode(secret, counter)
	if err != nil {
		return nil, err
	}

	ch := Challenge{
		MobileNumber: mobile,
		Secret:       secret,
		Counter:      counter,
		IssuedAt:     now,
		ExpiresAt:    now.Add(s.cfg.TTL),
	}
	if err := s.store.Save(ctx, ch, s.cfg.TTL+s.cfg.Grace); err != nil {
		s.logger.Error(op+" otp persist failed", zap.String("mobile_number", mobile), zap.Error(err))
		return nil, err
	}

	err = s.notifier.Notify(ctx, notification.Message{
		To:       person.PersonalEmail,
		Template: notification.TemplateOTP,
		Data: map[string]string{
			"name":               person.Name,
			"code":               code,
			"expires_in_minutes": strconv.Itoa(int(s.cfg.TTL.Minutes())),
		},
	})
	if err != nil {
		s.logger.Error(op+" otp delivery failed", zap.String("user_id", person.ID.String()), zap.Error(err))
		return nil, otperrors.ErrOTPDeliveryFailed
	}

	s.logger.Info(op+" otp success", zap.String("user_id", person.ID.String()))
	return &IssueResult{
		MobileNumber:     mobile,
		ExpiresAt:        ch.ExpiresAt,
		ExpiresInSeconds: int(s.cfg.TTL.Seconds()),
	}, nil
}

// Verify mengonsumsi challenge bila kode cocok dan belum kedaluwarsa.
// Challenge yang kedaluwarsa dibiarkan apa adanya.
func (s *service) Verify(ctx context.Context, mobile, code string) error {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return otperrors.ErrMobileRequired
	}

	ch, err := s.store.Get(ctx, mobile)
	if err != nil {
		if errors.Is(err, ErrChallengeNotFound) {
			return otperrors.ErrInvalidOrExpiredOTP
		}
		s.logger.Error("verify otp load failed", zap.String("mobile_number", mobile), zap.Error(err))
		return err
	}

	if ch.Expired(s.now()) {
		s.logger.Warn("verify otp rejected: expired", zap.String("mobile_number", mobile))
		return otperrors.ErrOTPExpired
	}

	if !validateCode(strings.TrimSpace(code), ch) {
		ch.Attempts++
		if ch.Attempts >= s.cfg.MaxAttempts {
			if _, err := s.store.Delete(ctx, mobile); err != nil {
				s.logger.Error("verify otp discard failed", zap.String("mobile_number", mobile), zap.Error(err))
				return err
			}
			s.logger.Warn("verify otp rejected: too many attempts", zap.String("mobile_number", mobile))
			return otperrors.ErrTooManyAttempts
		}
		if err := s.store.Update(ctx, *ch); err != nil {
			if errors.Is(err, ErrChallengeNotFound) {
				return otperrors.ErrInvalidOrExpiredOTP
			}
			s.logger.Error("verify otp attempt persist failed", zap.String("mobile_number", mobile), zap.Error(err))
			return err
		}
		s.logger.Warn("verify otp rejected: mismatch", zap.String("mobile_number", mobile), zap.Int("attempts", ch.Attempts))
		return otperrors.ErrInvalidOrExpiredOTP
	}

	consumed, err := s.store.Delete(ctx, mobile)
	if err != nil {
		s.logger.Error("verify otp consume failed", zap.String("mobile_number", mobile), zap.Error(err))
		return err
	}
	if !consumed {
		// verify lain dengan kode yang sama sudah lebih dulu menghapus challenge
		s.logger.Warn("verify otp rejected: already consumed", zap.String("mobile_number", mobile))
		return otperrors.ErrInvalidOrExpiredOTP
	}

	s.logger.Info("verify otp success", zap.String("mobile_number", mobile))
	return nil
}
