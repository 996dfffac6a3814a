package user

import (
	"context"
	"database/sql"
	"errors"

	usererrors "github.com/saxena100parth/codriva-hrms-sub002/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter Filter) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Me(ctx context.Context, actorID string) (UserResponse, error)
	ChangeRole(ctx context.Context, actorID, id, role string) (UserResponse, error)
	UpdateStatus(ctx context.Context, actorID, id, status string) (UserResponse, error)
	LinkManager(ctx context.Context, id, managerID string) (UserResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, filter Filter) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}
	return ToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, MapRepositoryError(err)
	}
	return ToResponse(*u), nil
}

func (s *service) Me(ctx context.Context, actorID string) (UserResponse, error) {
	return s.GetByID(ctx, actorID)
}

func (s *service) ChangeRole(ctx context.Context, actorID, id, role string) (UserResponse, error) {
	s.logger.Debug("change role requested",
		zap.String("actor_id", actorID),
		zap.String("user_id", id),
		zap.String("role", role),
	)

	if !IsValidRole(role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if actorID == id && role != RoleAdmin {
		return UserResponse{}, usererrors.ErrCannotDemoteSelf
	}

	return s.mutate(ctx, "change role", id, func(u *User) error {
		u.Role = role
		return nil
	})
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id, status string) (UserResponse, error) {
	s.logger.Debug("update status requested",
		zap.String("actor_id", actorID),
		zap.String("user_id", id),
		zap.String("status", status),
	)

	if !IsValidStatus(status) {
		return UserResponse{}, usererrors.ErrInvalidStatus
	}
	if actorID == id && status != StatusActive {
		return UserResponse{}, usererrors.ErrCannotDemoteSelf
	}

	return s.mutate(ctx, "update status", id, func(u *User) error {
		u.Status = status
		return nil
	})
}

func (s *service) LinkManager(ctx context.Context, id, managerID string) (UserResponse, error) {
	if id == managerID {
		return UserResponse{}, usererrors.ErrInvalidManager
	}
	managerUUID, err := uuid.Parse(managerID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidManager
	}

	manager, err := s.repo.FindByID(ctx, managerID)
	if err != nil {
		if errors.Is(MapRepositoryError(err), usererrors.ErrUserNotFound) {
			return UserResponse{}, usererrors.ErrInvalidManager
		}
		return UserResponse{}, err
	}
	if manager.Status != StatusActive {
		return UserResponse{}, usererrors.ErrInvalidManager
	}

	return s.mutate(ctx, "link manager", id, func(u *User) error {
		u.ReportingManagerID = &managerUUID
		name := manager.Name
		u.ReportingManagerName = &name
		return nil
	})
}

// mutate menjalankan perubahan pada satu user di dalam transaksi dengan row lock.
func (s *service) mutate(ctx context.Context, op, id string, apply func(u *User) error) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error(op+" begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return UserResponse{}, MapRepositoryError(err)
	}

	if err := apply(u); err != nil {
		return UserResponse{}, err
	}
	if err := u.Validate(); err != nil {
		s.logger.Warn(op+" validation failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error(op+" persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, MapRepositoryError(err)
	}
	if u.Status == StatusDeleted {
		if err := qtx.Delete(ctx, id); err != nil {
			s.logger.Error(op+" soft delete failed", zap.String("user_id", id), zap.Error(err))
			return UserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(op+" commit failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}
	s.logger.Info(op+" success", zap.String("user_id", id))

	return ToResponse(*u), nil
}
