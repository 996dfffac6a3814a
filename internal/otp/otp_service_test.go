package otp_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"
	notificationMock "github.com/saxena100parth/codriva-hrms-sub002/internal/notification/mock"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/otp"
	otperrors "github.com/saxena100parth/codriva-hrms-sub002/internal/otp/errors"
	otpMock "github.com/saxena100parth/codriva-hrms-sub002/internal/otp/mock"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type otpServiceDeps struct {
	store    *otpMock.MockStore
	persons  *otpMock.MockPersonFinder
	notifier *notificationMock.MockNotifier
	service  otp.Service
}

func setupOTPServiceTest(t *testing.T) otpServiceDeps {
	ctrl := gomock.NewController(t)
	deps := otpServiceDeps{
		store:    otpMock.NewMockStore(ctrl),
		persons:  otpMock.NewMockPersonFinder(ctrl),
		notifier: notificationMock.NewMockNotifier(ctrl),
	}
	deps.service = otp.NewService(deps.store, deps.persons, deps.notifier, otp.Config{
		TTL:         10 * time.Minute,
		Grace:       5 * time.Minute,
		MaxAttempts: 3,
	})
	return deps
}

func invitedPerson() *user.User {
	expiry := time.Now().Add(24 * time.Hour)
	return &user.User{
		ID:               uuid.New(),
		Name:             "Asha",
		PersonalEmail:    "a@x.com",
		MobileNumber:     "9999999999",
		Role:             user.RoleEmployee,
		Status:           user.StatusDraft,
		OnboardingStatus: user.OnboardingInvited,
		InviteExpiryTime: &expiry,
	}
}

// issueAndCapture menjalankan Issue lalu mengembalikan challenge yang
// tersimpan dan kode yang dikirim lewat notifier.
func issueAndCapture(t *testing.T, deps otpServiceDeps) (otp.Challenge, string) {
	t.Helper()
	ctx := context.Background()
	var saved otp.Challenge
	var code string

	deps.persons.EXPECT().FindByMobile(ctx, "9999999999").Return(invitedPerson(), nil)
	deps.store.EXPECT().
		Save(ctx, gomock.Any(), 15*time.Minute).
		DoAndReturn(func(_ context.Context, ch otp.Challenge, _ time.Duration) error {
			saved = ch
			return nil
		})
	deps.notifier.EXPECT().
		Notify(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notification.Message) error {
			assert.Equal(t, "a@x.com", msg.To)
			assert.Equal(t, notification.TemplateOTP, msg.Template)
			code = msg.Data["code"]
			return nil
		})

	res, err := deps.service.Issue(ctx, "9999999999")
	assert.NoError(t, err)
	assert.Equal(t, 600, res.ExpiresInSeconds)
	return saved, code
}

func TestService_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a six digit challenge and mails it", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		saved, code := issueAndCapture(t, deps)

		assert.Len(t, code, 6)
		assert.Equal(t, "9999999999", saved.MobileNumber)
		assert.WithinDuration(t, saved.IssuedAt.Add(10*time.Minute), saved.ExpiresAt, time.Second)
		assert.NotEmpty(t, saved.Secret)
	})

	t.Run("unknown mobile", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		deps.persons.EXPECT().FindByMobile(ctx, "1").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Issue(ctx, "1")
		assert.ErrorIs(t, err, otperrors.ErrUserNotFound)
	})

	t.Run("completed onboarding", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		p := invitedPerson()
		p.OnboardingStatus = user.OnboardingCompleted
		deps.persons.EXPECT().FindByMobile(ctx, gomock.Any()).Return(p, nil)

		_, err := deps.service.Issue(ctx, "9999999999")
		assert.ErrorIs(t, err, otperrors.ErrOnboardingAlreadyCompleted)
	})

	t.Run("invitation expired", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		p := invitedPerson()
		past := time.Now().Add(-time.Minute)
		p.InviteExpiryTime = &past
		deps.persons.EXPECT().FindByMobile(ctx, gomock.Any()).Return(p, nil)

		_, err := deps.service.Resend(ctx, "9999999999")
		assert.ErrorIs(t, err, otperrors.ErrInvitationExpired)
	})

	t.Run("delivery failure", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		deps.persons.EXPECT().FindByMobile(ctx, gomock.Any()).Return(invitedPerson(), nil)
		deps.store.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil)
		deps.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(errors.New("smtp down"))

		_, err := deps.service.Issue(ctx, "9999999999")
		assert.ErrorIs(t, err, otperrors.ErrOTPDeliveryFailed)
	})

	t.Run("empty mobile", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		_, err := deps.service.Issue(ctx, "  ")
		assert.ErrorIs(t, err, otperrors.ErrMobileRequired)
	})
}

func TestService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("correct code consumes the challenge", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		saved, code := issueAndCapture(t, deps)

		deps.store.EXPECT().Get(ctx, "9999999999").Return(&saved, nil)
		deps.store.EXPECT().Delete(ctx, "9999999999").Return(true, nil)

		assert.NoError(t, deps.service.Verify(ctx, "9999999999", code))
	})

	t.Run("wrong code counts an attempt", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		saved, code := issueAndCapture(t, deps)
		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}

		deps.store.EXPECT().Get(ctx, "9999999999").Return(&saved, nil)
		deps.store.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ch otp.Challenge) error {
				assert.Equal(t, 1, ch.Attempts)
				return nil
			})

		err := deps.service.Verify(ctx, "9999999999", wrong)
		assert.ErrorIs(t, err, otperrors.ErrInvalidOrExpiredOTP)
	})

	t.Run("last wrong attempt discards the challenge", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		saved, code := issueAndCapture(t, deps)
		saved.Attempts = 2
		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}

		deps.store.EXPECT().Get(ctx, "9999999999").Return(&saved, nil)
		deps.store.EXPECT().Delete(ctx, "9999999999").Return(true, nil)

		err := deps.service.Verify(ctx, "9999999999", wrong)
		assert.ErrorIs(t, err, otperrors.ErrTooManyAttempts)
	})

	t.Run("expired code fails and leaves the challenge untouched", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		saved, code := issueAndCapture(t, deps)
		saved.ExpiresAt = time.Now().Add(-time.Second)

		deps.store.EXPECT().Get(ctx, "9999999999").Return(&saved, nil)
		// tidak ada Delete/Update yang diharapkan

		err := deps.service.Verify(ctx, "9999999999", code)
		assert.ErrorIs(t, err, otperrors.ErrOTPExpired)
	})

	t.Run("code already consumed by another verify", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		saved, code := issueAndCapture(t, deps)

		deps.store.EXPECT().Get(ctx, "9999999999").Return(&saved, nil)
		deps.store.EXPECT().Delete(ctx, "9999999999").Return(false, nil)

		err := deps.service.Verify(ctx, "9999999999", code)
		assert.ErrorIs(t, err, otperrors.ErrInvalidOrExpiredOTP)
	})

	t.Run("wrong code after the challenge was consumed", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		saved, code := issueAndCapture(t, deps)
		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}

		deps.store.EXPECT().Get(ctx, "9999999999").Return(&saved, nil)
		deps.store.EXPECT().Update(ctx, gomock.Any()).Return(otp.ErrChallengeNotFound)

		err := deps.service.Verify(ctx, "9999999999", wrong)
		assert.ErrorIs(t, err, otperrors.ErrInvalidOrExpiredOTP)
	})

	t.Run("no challenge", func(t *testing.T) {
		deps := setupOTPServiceTest(t)
		deps.store.EXPECT().Get(ctx, "9999999999").Return(nil, otp.ErrChallengeNotFound)

		err := deps.service.Verify(ctx, "9999999999", "123456")
		assert.ErrorIs(t, err, otperrors.ErrInvalidOrExpiredOTP)
	})
}

// gatedStore menahan setiap Get sampai dua pemanggil sudah membaca challenge,
// sehingga keduanya melihat challenge yang sama sebelum ada yang menghapus.
type gatedStore struct {
	mu      sync.Mutex
	ch      *otp.Challenge
	readers sync.WaitGroup
}

func (s *gatedStore) Save(_ context.Context, ch otp.Challenge, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ch = &ch
	return nil
}

func (s *gatedStore) Get(_ context.Context, _ string) (*otp.Challenge, error) {
	s.mu.Lock()
	ch := s.ch
	s.mu.Unlock()

	s.readers.Done()
	s.readers.Wait()
	if ch == nil {
		return nil, otp.ErrChallengeNotFound
	}
	cp := *ch
	return &cp, nil
}

func (s *gatedStore) Update(_ context.Context, ch otp.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ch == nil {
		return otp.ErrChallengeNotFound
	}
	s.ch = &ch
	return nil
}

func (s *gatedStore) Delete(_ context.Context, _ string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ch == nil {
		return false, nil
	}
	s.ch = nil
	return true, nil
}

func TestService_Verify_ConcurrentSameCode(t *testing.T) {
	ctx := context.Background()
	deps := setupOTPServiceTest(t)
	saved, code := issueAndCapture(t, deps)

	store := &gatedStore{ch: &saved}
	store.readers.Add(2)
	svc := otp.NewService(store, deps.persons, deps.notifier, otp.Config{TTL: 10 * time.Minute, MaxAttempts: 3})

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Verify(ctx, "9999999999", code)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, otperrors.ErrInvalidOrExpiredOTP)
	}
	assert.Equal(t, 1, succeeded)
}
