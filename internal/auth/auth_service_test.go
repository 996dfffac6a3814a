package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/auth"
	autherrors "github.com/saxena100parth/codriva-hrms-sub002/internal/auth/errors"
	authMock "github.com/saxena100parth/codriva-hrms-sub002/internal/auth/mock"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"
	notificationMock "github.com/saxena100parth/codriva-hrms-sub002/internal/notification/mock"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/password"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/token"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authServiceDeps struct {
	repo     *authMock.MockRepository
	notifier *notificationMock.MockNotifier
	tokens   *token.Issuer
	service  auth.Service
}

func setupAuthServiceTest(t *testing.T) authServiceDeps {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	notifier := notificationMock.NewMockNotifier(ctrl)
	tokens := token.NewIssuer("test-secret", 15*time.Minute, time.Hour, 30*time.Minute)

	svc := auth.NewService(repo, tokens, notifier, auth.Config{
		MaxFailedAttempts: 3,
		LockDuration:      15 * time.Minute,
		BcryptCost:        bcrypt.MinCost,
	})
	return authServiceDeps{repo: repo, notifier: notifier, tokens: tokens, service: svc}
}

func newActiveUser(t *testing.T, pw string) *user.User {
	t.Helper()
	hash, err := password.Hash(pw, bcrypt.MinCost)
	assert.NoError(t, err)
	email := "staff@company.com"
	return &user.User{
		ID:               uuid.New(),
		Name:             "Staff",
		OfficialEmail:    &email,
		PersonalEmail:    "staff@mail.com",
		MobileNumber:     "9999999999",
		Role:             user.RoleEmployee,
		Status:           user.StatusActive,
		OnboardingStatus: user.OnboardingCompleted,
		PasswordHash:     &hash,
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues access and refresh tokens", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Secret#123")

		deps.repo.EXPECT().GetByEmail(ctx, "staff@company.com").Return(u, nil)

		access, refresh, resp, err := deps.service.Login(ctx, "staff@company.com", "Secret#123")

		assert.NoError(t, err)
		assert.Equal(t, "staff@company.com", resp.Email)

		claims, err := deps.tokens.Parse(access)
		assert.NoError(t, err)
		assert.Equal(t, token.TypeAccess, claims.Type)
		assert.Equal(t, u.ID.String(), claims.UserID)

		claims, err = deps.tokens.Parse(refresh)
		assert.NoError(t, err)
		assert.Equal(t, token.TypeRefresh, claims.Type)
	})

	t.Run("success resets failed attempts", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Secret#123")
		u.FailedLoginAttempts = 2

		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(u, nil)
		deps.repo.EXPECT().UpdateLoginState(ctx, u.ID, 0, nil).Return(nil)

		_, _, _, err := deps.service.Login(ctx, "staff@company.com", "Secret#123")
		assert.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := deps.service.Login(ctx, "nobody@company.com", "x")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password increments attempts", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Secret#123")

		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(u, nil)
		deps.repo.EXPECT().UpdateLoginState(ctx, u.ID, 1, nil).Return(nil)

		_, _, _, err := deps.service.Login(ctx, "staff@company.com", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("reaching max attempts locks the account", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Secret#123")
		u.FailedLoginAttempts = 2

		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(u, nil)
		deps.repo.EXPECT().
			UpdateLoginState(ctx, u.ID, 0, gomock.Not(gomock.Nil())).
			Return(nil)

		_, _, _, err := deps.service.Login(ctx, "staff@company.com", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrAccountLocked)
	})

	t.Run("locked account rejected even with right password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Secret#123")
		until := time.Now().Add(10 * time.Minute)
		u.LockedUntil = &until

		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(u, nil)

		_, _, _, err := deps.service.Login(ctx, "staff@company.com", "Secret#123")
		assert.ErrorIs(t, err, autherrors.ErrAccountLocked)
	})

	t.Run("draft person cannot login", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Secret#123")
		u.Status = user.StatusDraft

		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(u, nil)

		_, _, _, err := deps.service.Login(ctx, "staff@company.com", "Secret#123")
		assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
	})

	t.Run("repository failure bubbles up", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, errors.New("db down"))

		_, _, _, err := deps.service.Login(ctx, "staff@company.com", "x")
		assert.EqualError(t, err, "db down")
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates tokens", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Secret#123")
		refresh, err := deps.tokens.Issue(auth.SubjectOf(u), token.TypeRefresh)
		assert.NoError(t, err)

		deps.repo.EXPECT().GetByID(ctx, u.ID).Return(u, nil)

		access, newRefresh, resp, err := deps.service.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, u.ID.String(), resp.ID)
	})

	t.Run("access token is not accepted as refresh", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Secret#123")
		access, _ := deps.tokens.Issue(auth.SubjectOf(u), token.TypeAccess)

		_, _, _, err := deps.service.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		_, _, _, err := deps.service.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success clears temporary flag and notifies", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Temp#Pass1")
		u.HasTemporaryPassword = true

		deps.repo.EXPECT().GetByID(ctx, u.ID).Return(u, nil)
		deps.repo.EXPECT().
			UpdatePassword(ctx, u.ID, gomock.Any(), false, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string, _ bool, _ time.Time) error {
				assert.True(t, password.Compare(hash, "N3w#Passw0rd"))
				return nil
			})
		deps.notifier.EXPECT().
			Notify(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, notification.TemplatePasswordChanged, msg.Template)
				assert.Equal(t, "staff@company.com", msg.To)
				return nil
			})

		err := deps.service.ChangePassword(ctx, u.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "Temp#Pass1",
			NewPassword:     "N3w#Passw0rd",
		})
		assert.NoError(t, err)
	})

	t.Run("notification failure does not fail the change", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Temp#Pass1")

		deps.repo.EXPECT().GetByID(ctx, u.ID).Return(u, nil)
		deps.repo.EXPECT().UpdatePassword(ctx, u.ID, gomock.Any(), false, gomock.Any()).Return(nil)
		deps.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(errors.New("smtp down"))

		err := deps.service.ChangePassword(ctx, u.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "Temp#Pass1",
			NewPassword:     "N3w#Passw0rd",
		})
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Temp#Pass1")
		deps.repo.EXPECT().GetByID(ctx, u.ID).Return(u, nil)

		err := deps.service.ChangePassword(ctx, u.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "nope",
			NewPassword:     "N3w#Passw0rd",
		})
		assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
	})

	t.Run("weak new password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Temp#Pass1")
		deps.repo.EXPECT().GetByID(ctx, u.ID).Return(u, nil)

		err := deps.service.ChangePassword(ctx, u.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "Temp#Pass1",
			NewPassword:     "alllowercase",
		})
		assert.ErrorIs(t, err, autherrors.ErrWeakPassword)
	})

	t.Run("same password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := newActiveUser(t, "Temp#Pass1")
		deps.repo.EXPECT().GetByID(ctx, u.ID).Return(u, nil)

		err := deps.service.ChangePassword(ctx, u.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "Temp#Pass1",
			NewPassword:     "Temp#Pass1",
		})
		assert.ErrorIs(t, err, autherrors.ErrSamePassword)
	})

	t.Run("invalid user id", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		err := deps.service.ChangePassword(ctx, "abc", auth.ChangePasswordRequest{})
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})
}
