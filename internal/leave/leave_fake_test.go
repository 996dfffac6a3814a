package leave_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/leave"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/notification"
)

type fakeLeaveRepository struct {
	withTxFn               func(tx *sql.Tx) leave.Repository
	createFn               func(ctx context.Context, l *leave.Leave) error
	findByIDFn             func(ctx context.Context, id string) (*leave.Leave, error)
	findByIDForUpdateFn    func(ctx context.Context, id string) (*leave.Leave, error)
	findAllFn              func(ctx context.Context, filter leave.Filter) ([]leave.Leave, error)
	updateStatusFn         func(ctx context.Context, l *leave.Leave, fromStatus string) (bool, error)
	hasOverlappingFn       func(ctx context.Context, userID string, startDate, endDate time.Time) (bool, error)
	ensureBalancesFn       func(ctx context.Context, userID string, defaults map[string]int) error
	findBalancesFn         func(ctx context.Context, userID string) ([]leave.Balance, error)
	findBalanceForUpdateFn func(ctx context.Context, userID, leaveType string) (*leave.Balance, error)
	incrementTakenFn       func(ctx context.Context, userID, leaveType string, days int) (bool, error)
	decrementTakenFn       func(ctx context.Context, userID, leaveType string, days int) (bool, error)
	setBalanceFn           func(ctx context.Context, userID, leaveType string, balance int) (bool, error)
	createLedgerEntryFn    func(ctx context.Context, e *leave.LedgerEntry) error
	sumApprovedDaysFn      func(ctx context.Context, userID string) (map[string]int, error)
	sumLedgerDaysFn        func(ctx context.Context, userID string) (map[string]int, error)
	findOwnerFn            func(ctx context.Context, userID string) (*leave.Owner, error)
	lockOwnerFn            func(ctx context.Context, userID string) (*leave.Owner, error)
	findOwnersFn           func(ctx context.Context, userIDs []string) ([]leave.Owner, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByIDForUpdate(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDForUpdateFn != nil {
		return f.findByIDForUpdateFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context, filter leave.Filter) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) UpdateStatus(ctx context.Context, l *leave.Leave, fromStatus string) (bool, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, l, fromStatus)
	}
	return true, nil
}

func (f *fakeLeaveRepository) HasOverlapping(ctx context.Context, userID string, startDate, endDate time.Time) (bool, error) {
	if f.hasOverlappingFn != nil {
		return f.hasOverlappingFn(ctx, userID, startDate, endDate)
	}
	return false, nil
}

func (f *fakeLeaveRepository) EnsureBalances(ctx context.Context, userID string, defaults map[string]int) error {
	if f.ensureBalancesFn != nil {
		return f.ensureBalancesFn(ctx, userID, defaults)
	}
	return nil
}

func (f *fakeLeaveRepository) FindBalances(ctx context.Context, userID string) ([]leave.Balance, error) {
	if f.findBalancesFn != nil {
		return f.findBalancesFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindBalanceForUpdate(ctx context.Context, userID, leaveType string) (*leave.Balance, error) {
	if f.findBalanceForUpdateFn != nil {
		return f.findBalanceForUpdateFn(ctx, userID, leaveType)
	}
	return &leave.Balance{LeaveType: leaveType}, nil
}

func (f *fakeLeaveRepository) IncrementTaken(ctx context.Context, userID, leaveType string, days int) (bool, error) {
	if f.incrementTakenFn != nil {
		return f.incrementTakenFn(ctx, userID, leaveType, days)
	}
	return true, nil
}

func (f *fakeLeaveRepository) DecrementTaken(ctx context.Context, userID, leaveType string, days int) (bool, error) {
	if f.decrementTakenFn != nil {
		return f.decrementTakenFn(ctx, userID, leaveType, days)
	}
	return true, nil
}

func (f *fakeLeaveRepository) SetBalance(ctx context.Context, userID, leaveType string, balance int) (bool, error) {
	if f.setBalanceFn != nil {
		return f.setBalanceFn(ctx, userID, leaveType, balance)
	}
	return true, nil
}

func (f *fakeLeaveRepository) CreateLedgerEntry(ctx context.Context, e *leave.LedgerEntry) error {
	if f.createLedgerEntryFn != nil {
		return f.createLedgerEntryFn(ctx, e)
	}
	return nil
}

func (f *fakeLeaveRepository) SumApprovedDays(ctx context.Context, userID string) (map[string]int, error) {
	if f.sumApprovedDaysFn != nil {
		return f.sumApprovedDaysFn(ctx, userID)
	}
	return map[string]int{}, nil
}

func (f *fakeLeaveRepository) SumLedgerDays(ctx context.Context, userID string) (map[string]int, error) {
	if f.sumLedgerDaysFn != nil {
		return f.sumLedgerDaysFn(ctx, userID)
	}
	return map[string]int{}, nil
}

func (f *fakeLeaveRepository) FindOwner(ctx context.Context, userID string) (*leave.Owner, error) {
	if f.findOwnerFn != nil {
		return f.findOwnerFn(ctx, userID)
	}
	return &leave.Owner{Name: "Owner", PersonalEmail: "owner@mail.test"}, nil
}

func (f *fakeLeaveRepository) LockOwner(ctx context.Context, userID string) (*leave.Owner, error) {
	if f.lockOwnerFn != nil {
		return f.lockOwnerFn(ctx, userID)
	}
	return &leave.Owner{OnboardingStatus: "COMPLETED"}, nil
}

func (f *fakeLeaveRepository) FindOwners(ctx context.Context, userIDs []string) ([]leave.Owner, error) {
	if f.findOwnersFn != nil {
		return f.findOwnersFn(ctx, userIDs)
	}
	return nil, nil
}

type fakeHolidayChecker struct {
	dates map[string]bool
}

func (f fakeHolidayChecker) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return f.dates[date.Format(leave.DateLayout)], nil
}

type fakeNotifier struct {
	sent []notification.Message
	err  error
}

func (f *fakeNotifier) Notify(ctx context.Context, msg notification.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}
