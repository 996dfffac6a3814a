package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	leaveerrors "github.com/saxena100parth/codriva-hrms-sub002/internal/leave/errors"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/contextutil"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, actorID string, req ApplyLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool, filter Filter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actorID, id string, canReadAll bool) (LeaveResponse, error)
	GetBalance(ctx context.Context, userID string) (BalanceResponse, error)
	SetBalance(ctx context.Context, actorID, userID string, req SetBalanceRequest) (BalanceResponse, error)
	Reconcile(ctx context.Context, userID string) (ReconcileResponse, error)
	Export(ctx context.Context, filter Filter) ([]byte, error)
}

type Config struct {
	DefaultBalances map[string]int
}

type service struct {
	db       *sql.DB
	repo     Repository
	holidays HolidayChecker
	notifier notification.Notifier
	cfg      Config
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	holidays HolidayChecker,
	notifier notification.Notifier,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if cfg.DefaultBalances == nil {
		cfg.DefaultBalances = map[string]int{}
	}
	return &service{
		db:       db,
		repo:     repo,
		holidays: holidays,
		notifier: notifier,
		cfg:      cfg,
		logger:   l,
	}
}

func (s *service) Apply(ctx context.Context, actorID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("apply leave requested",
		zap.String("actor_id", actorID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	userID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	startDate, endDate, err := validateApplyRequest(req)
	if err != nil {
		s.logger.Warn("apply leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	days, err := CountBusinessDays(ctx, s.holidays, startDate, endDate)
	if err != nil {
		s.logger.Error("apply leave count business days failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if days == 0 {
		return LeaveResponse{}, leaveerrors.ErrNoBusinessDays
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	owner, err := qtx.LockOwner(ctx, actorID)
	if err != nil {
		return LeaveResponse{}, mapOwnerError(err)
	}
	if owner.OnboardingStatus != user.OnboardingCompleted {
		s.logger.Warn("apply leave onboarding not completed",
			zap.String("actor_id", actorID),
			zap.String("onboarding_status", owner.OnboardingStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrOnboardingNotCompleted
	}

	if err := qtx.EnsureBalances(ctx, actorID, s.cfg.DefaultBalances); err != nil {
		s.logger.Error("apply leave ensure balances failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	balance, err := qtx.FindBalanceForUpdate(ctx, actorID, req.LeaveType)
	if err != nil {
		s.logger.Error("apply leave find balance failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if days > balance.Available() {
		s.logger.Warn("apply leave insufficient balance",
			zap.String("actor_id", actorID),
			zap.Int("requested", days),
			zap.Int("available", balance.Available()),
		)
		return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
	}

	overlap, err := qtx.HasOverlapping(ctx, actorID, startDate, endDate)
	if err != nil {
		s.logger.Error("apply leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("apply leave overlap detected",
			zap.String("actor_id", actorID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:           uuid.New(),
		UserID:       userID,
		LeaveType:    req.LeaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		NumberOfDays: days,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       StatusPending,
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("actor_id", actorID),
		zap.Int("days", days),
	)

	return toLeaveResponse(l), nil
}

func (s *service) Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("decide leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("decision", req.Status),
	)

	approverID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	reason := strings.TrimSpace(req.RejectionReason)
	switch req.Status {
	case StatusApproved:
	case StatusRejected:
		if reason == "" {
			return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
		}
	default:
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapLeaveError(err)
	}
	if l.Status != StatusPending {
		log.Warn("decide leave not pending", zap.String("leave_id", id), zap.String("status", l.Status))
		return LeaveResponse{}, leaveerrors.ErrLeaveNotPending
	}
	if l.UserID == approverID {
		log.Warn("decide leave self decision rejected", zap.String("leave_id", id))
		return LeaveResponse{}, leaveerrors.ErrSelfDecision
	}

	now := time.Now()
	l.Status = req.Status
	l.ApprovedBy = &approverID
	l.ApprovedAt = &now
	if req.Status == StatusRejected {
		l.RejectionReason = &reason
	}

	updated, err := qtx.UpdateStatus(ctx, l, StatusPending)
	if err != nil {
		log.Error("decide leave update status failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !updated {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotPending
	}

	if req.Status == StatusApproved {
		ownerID := l.UserID.String()
		if err := qtx.EnsureBalances(ctx, ownerID, s.cfg.DefaultBalances); err != nil {
			log.Error("decide leave ensure balances failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		ok, err := qtx.IncrementTaken(ctx, ownerID, l.LeaveType, l.NumberOfDays)
		if err != nil {
			log.Error("decide leave increment taken failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		if !ok {
			log.Warn("decide leave insufficient balance",
				zap.String("leave_id", id),
				zap.Int("days", l.NumberOfDays),
			)
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
		}
		if err := qtx.CreateLedgerEntry(ctx, &LedgerEntry{
			ID:        uuid.New(),
			UserID:    l.UserID,
			LeaveType: l.LeaveType,
			LeaveID:   &l.ID,
			Kind:      EntryApprove,
			Days:      l.NumberOfDays,
			ActorID:   approverID,
		}); err != nil {
			log.Error("decide leave ledger entry failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	log.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
		zap.String("approver_id", actorID),
	)

	s.notifyOwner(ctx, l)
	return toLeaveResponse(l), nil
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested", zap.String("leave_id", id), zap.String("actor_id", actorID))

	ownerID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapLeaveError(err)
	}
	if l.UserID != ownerID {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}

	switch l.Status {
	case StatusCancelled:
		return LeaveResponse{}, leaveerrors.ErrAlreadyCancelled
	case StatusRejected:
		return LeaveResponse{}, leaveerrors.ErrCannotCancelRejected
	case StatusApproved:
		if !dateOnly(l.StartDate).After(today()) {
			s.logger.Warn("cancel leave already started",
				zap.String("leave_id", id),
				zap.String("start_date", l.StartDate.Format(DateLayout)),
			)
			return LeaveResponse{}, leaveerrors.ErrCannotCancelStarted
		}
	}

	prevStatus := l.Status
	now := time.Now()
	l.Status = StatusCancelled
	l.CancelledAt = &now

	updated, err := qtx.UpdateStatus(ctx, l, prevStatus)
	if err != nil {
		s.logger.Error("cancel leave update status failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !updated {
		return LeaveResponse{}, leaveerrors.ErrAlreadyCancelled
	}

	if prevStatus == StatusApproved {
		ok, err := qtx.DecrementTaken(ctx, actorID, l.LeaveType, l.NumberOfDays)
		if err != nil {
			s.logger.Error("cancel leave decrement taken failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		if !ok {
			s.logger.Error("cancel leave taken counter below request days",
				zap.String("leave_id", id),
				zap.Int("days", l.NumberOfDays),
			)
			return LeaveResponse{}, errors.New("leave balance counter out of sync")
		}
		if err := qtx.CreateLedgerEntry(ctx, &LedgerEntry{
			ID:        uuid.New(),
			UserID:    l.UserID,
			LeaveType: l.LeaveType,
			LeaveID:   &l.ID,
			Kind:      EntryCancel,
			Days:      -l.NumberOfDays,
			ActorID:   ownerID,
		}); err != nil {
			s.logger.Error("cancel leave ledger entry failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("cancel leave success",
		zap.String("leave_id", id),
		zap.String("previous_status", prevStatus),
	)

	return toLeaveResponse(l), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool, filter Filter) ([]LeaveResponse, error) {
	if !canReadAll {
		filter.UserID = actorID
	}

	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}

	out := make([]LeaveResponse, 0, len(leaves))
	for i := range leaves {
		out = append(out, toLeaveResponse(&leaves[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, actorID, id string, canReadAll bool) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapLeaveError(err)
	}
	if !canReadAll && l.UserID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}
	return toLeaveResponse(l), nil
}

func (s *service) GetBalance(ctx context.Context, userID string) (BalanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidUserID
	}
	if _, err := s.repo.FindOwner(ctx, userID); err != nil {
		return BalanceResponse{}, mapOwnerError(err)
	}
	if err := s.repo.EnsureBalances(ctx, userID, s.cfg.DefaultBalances); err != nil {
		s.logger.Error("get balance ensure balances failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	balances, err := s.repo.FindBalances(ctx, userID)
	if err != nil {
		s.logger.Error("get balance failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	return toBalanceResponse(userID, balances), nil
}

func (s *service) SetBalance(ctx context.Context, actorID, userID string, req SetBalanceRequest) (BalanceResponse, error) {
	s.logger.Debug("set leave balance requested",
		zap.String("actor_id", actorID),
		zap.String("user_id", userID),
		zap.String("leave_type", req.LeaveType),
	)

	adjusterID, err := uuid.Parse(actorID)
	if err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidActorID
	}
	targetID, err := uuid.Parse(userID)
	if err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidUserID
	}
	if !IsValidType(req.LeaveType) {
		return BalanceResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	if req.Balance == nil || *req.Balance < 0 {
		return BalanceResponse{}, leaveerrors.ErrBalanceBelowTaken
	}
	newBalance := *req.Balance

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("set leave balance begin tx failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindOwner(ctx, userID); err != nil {
		return BalanceResponse{}, mapOwnerError(err)
	}
	if err := qtx.EnsureBalances(ctx, userID, s.cfg.DefaultBalances); err != nil {
		s.logger.Error("set leave balance ensure balances failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	current, err := qtx.FindBalanceForUpdate(ctx, userID, req.LeaveType)
	if err != nil {
		s.logger.Error("set leave balance find balance failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	if newBalance < current.Taken {
		s.logger.Warn("set leave balance below taken",
			zap.String("user_id", userID),
			zap.Int("balance", newBalance),
			zap.Int("taken", current.Taken),
		)
		return BalanceResponse{}, leaveerrors.ErrBalanceBelowTaken
	}

	ok, err := qtx.SetBalance(ctx, userID, req.LeaveType, newBalance)
	if err != nil {
		s.logger.Error("set leave balance update failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	if !ok {
		return BalanceResponse{}, leaveerrors.ErrBalanceBelowTaken
	}

	if delta := newBalance - current.Balance; delta != 0 {
		if err := qtx.CreateLedgerEntry(ctx, &LedgerEntry{
			ID:        uuid.New(),
			UserID:    targetID,
			LeaveType: req.LeaveType,
			Kind:      EntryAdjust,
			Days:      delta,
			ActorID:   adjusterID,
		}); err != nil {
			s.logger.Error("set leave balance ledger entry failed", zap.Error(err))
			return BalanceResponse{}, err
		}
	}

	balances, err := qtx.FindBalances(ctx, userID)
	if err != nil {
		s.logger.Error("set leave balance reload failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("set leave balance commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	s.logger.Info("set leave balance success",
		zap.String("user_id", userID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("balance", newBalance),
	)

	return toBalanceResponse(userID, balances), nil
}

// Reconcile membandingkan counter taken dengan total hari request APPROVED
// dan jumlah entri ledger per jenis cuti.
func (s *service) Reconcile(ctx context.Context, userID string) (ReconcileResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return ReconcileResponse{}, leaveerrors.ErrInvalidUserID
	}
	if _, err := s.repo.FindOwner(ctx, userID); err != nil {
		return ReconcileResponse{}, mapOwnerError(err)
	}

	balances, err := s.repo.FindBalances(ctx, userID)
	if err != nil {
		s.logger.Error("reconcile find balances failed", zap.Error(err))
		return ReconcileResponse{}, err
	}
	approved, err := s.repo.SumApprovedDays(ctx, userID)
	if err != nil {
		s.logger.Error("reconcile sum approved days failed", zap.Error(err))
		return ReconcileResponse{}, err
	}
	ledger, err := s.repo.SumLedgerDays(ctx, userID)
	if err != nil {
		s.logger.Error("reconcile sum ledger days failed", zap.Error(err))
		return ReconcileResponse{}, err
	}

	taken := make(map[string]int, len(balances))
	for _, b := range balances {
		taken[b.LeaveType] = b.Taken
	}

	resp := ReconcileResponse{UserID: userID, Consistent: true}
	for _, t := range Types {
		item := ReconcileItem{
			LeaveType:    t,
			Taken:        taken[t],
			ApprovedDays: approved[t],
			LedgerDays:   ledger[t],
			Drift:        taken[t] - approved[t],
		}
		if item.Drift != 0 || item.LedgerDays != item.Taken {
			resp.Consistent = false
			s.logger.Warn("leave balance drift detected",
				zap.String("user_id", userID),
				zap.String("leave_type", t),
				zap.Int("taken", item.Taken),
				zap.Int("approved_days", item.ApprovedDays),
				zap.Int("ledger_days", item.LedgerDays),
			)
		}
		resp.Items = append(resp.Items, item)
	}
	return resp, nil
}

func (s *service) notifyOwner(ctx context.Context, l *Leave) {
	if s.notifier == nil {
		return
	}
	owner, err := s.repo.FindOwner(ctx, l.UserID.String())
	if err != nil {
		s.logger.Warn("leave notify owner lookup failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return
	}

	data := map[string]string{
		"name":       owner.Name,
		"leave_type": l.LeaveType,
		"start_date": l.StartDate.Format(DateLayout),
		"end_date":   l.EndDate.Format(DateLayout),
		"status":     l.Status,
	}
	if l.RejectionReason != nil {
		data["reason"] = *l.RejectionReason
	}

	err = s.notifier.Notify(ctx, notification.Message{
		To:       owner.Email(),
		Template: notification.TemplateLeaveStatus,
		Data:     data,
	})
	if err != nil {
		s.logger.Warn("leave status notification failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
	}
}

func validateApplyRequest(req ApplyLeaveRequest) (time.Time, time.Time, error) {
	if !IsValidType(req.LeaveType) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}
	startDate, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	if startDate.Before(today()) {
		return time.Time{}, time.Time{}, leaveerrors.ErrStartDateInPast
	}
	return startDate, endDate, nil
}

func mapLeaveError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	return err
}

func mapOwnerError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrUserNotFound
	}
	return err
}
