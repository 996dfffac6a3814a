package user_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"
	usererrors "github.com/saxena100parth/codriva-hrms-sub002/internal/user/errors"
	mock_user "github.com/saxena100parth/codriva-hrms-sub002/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type userServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *mock_user.MockRepository
	service user.Service
}

func setupUserServiceTest(t *testing.T) *userServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := mock_user.NewMockRepository(ctrl)

	return &userServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		service: user.NewService(db, repo),
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(v string) *string { return &v }

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		filter := user.Filter{Role: user.RoleEmployee, Q: "budi"}
		deps.repo.EXPECT().
			FindAll(gomock.Any(), filter).
			Return([]user.User{{
				ID:            uuid.New(),
				Name:          "Budi",
				PersonalEmail: "budi@mail.com",
				MobileNumber:  "9999999999",
				Role:          user.RoleEmployee,
			}}, nil)

		res, err := deps.service.GetAll(ctx, filter)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Budi", res[0].Name)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		res, err := deps.service.GetAll(ctx, user.Filter{})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindByID(gomock.Any(), id.String()).
			Return(&user.User{ID: id, Name: "Siti", OfficialEmail: strPtr("siti@company.com")}, nil)

		res, err := deps.service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), res.ID)
		assert.Equal(t, "siti@company.com", *res.Email)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id.String())

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestUserService_ChangeRole(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	targetID := uuid.New()

	t.Run("success promote to HR", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID.String()).Return(&user.User{
			ID:            targetID,
			PersonalEmail: "a@x.com",
			MobileNumber:  "9999999999",
			Role:          user.RoleEmployee,
			Status:        user.StatusDraft,
		}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *user.User) error {
			assert.Equal(t, user.RoleHR, u.Role)
			return nil
		})

		res, err := deps.service.ChangeRole(ctx, actorID, targetID.String(), user.RoleHR)

		assert.NoError(t, err)
		assert.Equal(t, user.RoleHR, res.Role)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative admin without official email", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID.String()).Return(&user.User{
			ID:            targetID,
			PersonalEmail: "a@x.com",
			MobileNumber:  "9999999999",
			Role:          user.RoleEmployee,
			Status:        user.StatusDraft,
		}, nil)

		_, err := deps.service.ChangeRole(ctx, actorID, targetID.String(), user.RoleAdmin)

		assert.ErrorIs(t, err, usererrors.ErrOfficialEmailRequired)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative self demotion", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ChangeRole(ctx, actorID, actorID, user.RoleEmployee)

		assert.ErrorIs(t, err, usererrors.ErrCannotDemoteSelf)
	})

	t.Run("negative invalid role", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ChangeRole(ctx, actorID, targetID.String(), "OWNER")

		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	})
}

func TestUserService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	targetID := uuid.New()

	t.Run("success soft delete", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID.String()).Return(&user.User{
			ID:            targetID,
			PersonalEmail: "a@x.com",
			MobileNumber:  "9999999999",
			Status:        user.StatusInactive,
		}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().Delete(gomock.Any(), targetID.String()).Return(nil)

		res, err := deps.service.UpdateStatus(ctx, actorID, targetID.String(), user.StatusDeleted)

		assert.NoError(t, err)
		assert.Equal(t, user.StatusDeleted, res.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative activate without official email", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID.String()).Return(&user.User{
			ID:            targetID,
			PersonalEmail: "a@x.com",
			MobileNumber:  "9999999999",
			Status:        user.StatusDraft,
		}, nil)

		_, err := deps.service.UpdateStatus(ctx, actorID, targetID.String(), user.StatusActive)

		assert.ErrorIs(t, err, usererrors.ErrOfficialEmailRequired)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestUserService_LinkManager(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()
	managerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(gomock.Any(), managerID.String()).Return(&user.User{
			ID:     managerID,
			Name:   "Rina Manager",
			Status: user.StatusActive,
		}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), targetID.String()).Return(&user.User{
			ID:                   targetID,
			PersonalEmail:        "a@x.com",
			MobileNumber:         "9999999999",
			ReportingManagerName: strPtr("rina"),
		}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		res, err := deps.service.LinkManager(ctx, targetID.String(), managerID.String())

		assert.NoError(t, err)
		assert.Equal(t, managerID.String(), *res.ReportingManagerID)
		assert.Equal(t, "Rina Manager", *res.ReportingManagerName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative inactive manager", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(gomock.Any(), managerID.String()).Return(&user.User{
			ID:     managerID,
			Status: user.StatusInactive,
		}, nil)

		_, err := deps.service.LinkManager(ctx, targetID.String(), managerID.String())

		assert.ErrorIs(t, err, usererrors.ErrInvalidManager)
	})

	t.Run("negative self", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.LinkManager(ctx, targetID.String(), targetID.String())

		assert.ErrorIs(t, err, usererrors.ErrInvalidManager)
	})
}
