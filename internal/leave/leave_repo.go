package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filter struct {
	UserID    string
	Status    string
	LeaveType string
	From      *time.Time
	To        *time.Time
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Leave, error)
	FindAll(ctx context.Context, filter Filter) ([]Leave, error)
	UpdateStatus(ctx context.Context, l *Leave, fromStatus string) (bool, error)
	HasOverlapping(ctx context.Context, userID string, startDate, endDate time.Time) (bool, error)

	EnsureBalances(ctx context.Context, userID string, defaults map[string]int) error
	FindBalances(ctx context.Context, userID string) ([]Balance, error)
	FindBalanceForUpdate(ctx context.Context, userID, leaveType string) (*Balance, error)
	IncrementTaken(ctx context.Context, userID, leaveType string, days int) (bool, error)
	DecrementTaken(ctx context.Context, userID, leaveType string, days int) (bool, error)
	SetBalance(ctx context.Context, userID, leaveType string, balance int) (bool, error)

	CreateLedgerEntry(ctx context.Context, e *LedgerEntry) error
	SumApprovedDays(ctx context.Context, userID string) (map[string]int, error)
	SumLedgerDays(ctx context.Context, userID string) (map[string]int, error)

	FindOwner(ctx context.Context, userID string) (*Owner, error)
	LockOwner(ctx context.Context, userID string) (*Owner, error)
	FindOwners(ctx context.Context, userIDs []string) ([]Owner, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Leave, error) {
	db := r.conn(ctx).Model(&Leave{})
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.LeaveType != "" {
		db = db.Where("leave_type = ?", filter.LeaveType)
	}
	if filter.From != nil {
		db = db.Where("end_date >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("start_date <= ?", *filter.To)
	}

	var leaves []Leave
	err := db.Order("start_date DESC").Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}

// UpdateStatus menulis status hanya jika baris masih berstatus fromStatus.
// false berarti request sudah diproses oleh pemanggil lain.
func (r *repository) UpdateStatus(ctx context.Context, l *Leave, fromStatus string) (bool, error) {
	res := r.conn(ctx).
		Model(&Leave{}).
		Where("id = ? AND status = ?", l.ID, fromStatus).
		Updates(map[string]interface{}{
			"status":           l.Status,
			"approved_by":      l.ApprovedBy,
			"approved_at":      l.ApprovedAt,
			"rejection_reason": l.RejectionReason,
			"cancelled_at":     l.CancelledAt,
			"updated_at":       time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) HasOverlapping(ctx context.Context, userID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Leave{}).
		Where("user_id = ?", userID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EnsureBalances(ctx context.Context, userID string, defaults map[string]int) error {
	rows := make([]Balance, 0, len(Types))
	for _, t := range Types {
		b := Balance{LeaveType: t, Balance: defaults[t], UpdatedAt: time.Now()}
		if err := b.UserID.UnmarshalText([]byte(userID)); err != nil {
			return err
		}
		rows = append(rows, b)
	}
	return r.conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *repository) FindBalances(ctx context.Context, userID string) ([]Balance, error) {
	var balances []Balance
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindBalanceForUpdate(ctx context.Context, userID, leaveType string) (*Balance, error) {
	var b Balance
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, "user_id = ? AND leave_type = ?", userID, leaveType).Error
	return &b, err
}

// IncrementTaken hanya berhasil jika taken + days <= balance.
func (r *repository) IncrementTaken(ctx context.Context, userID, leaveType string, days int) (bool, error) {
	res := r.conn(ctx).
		Model(&Balance{}).
		Where("user_id = ? AND leave_type = ?", userID, leaveType).
		Where("taken + ? <= balance", days).
		Updates(map[string]interface{}{
			"taken":      gorm.Expr("taken + ?", days),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) DecrementTaken(ctx context.Context, userID, leaveType string, days int) (bool, error) {
	res := r.conn(ctx).
		Model(&Balance{}).
		Where("user_id = ? AND leave_type = ?", userID, leaveType).
		Where("taken >= ?", days).
		Updates(map[string]interface{}{
			"taken":      gorm.Expr("taken - ?", days),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) SetBalance(ctx context.Context, userID, leaveType string, balance int) (bool, error) {
	res := r.conn(ctx).
		Model(&Balance{}).
		Where("user_id = ? AND leave_type = ?", userID, leaveType).
		Where("taken <= ?", balance).
		Updates(map[string]interface{}{
			"balance":    balance,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) CreateLedgerEntry(ctx context.Context, e *LedgerEntry) error {
	return r.conn(ctx).Create(e).Error
}

type daysByType struct {
	LeaveType string
	Days      int
}

func (r *repository) SumApprovedDays(ctx context.Context, userID string) (map[string]int, error) {
	var rows []daysByType
	err := r.conn(ctx).
		Model(&Leave{}).
		Select("leave_type, COALESCE(SUM(number_of_days), 0) AS days").
		Where("user_id = ? AND status = ?", userID, StatusApproved).
		Group("leave_type").
		Scan(&rows).Error
	return toDaysMap(rows), err
}

func (r *repository) SumLedgerDays(ctx context.Context, userID string) (map[string]int, error) {
	var rows []daysByType
	err := r.conn(ctx).
		Model(&LedgerEntry{}).
		Select("leave_type, COALESCE(SUM(days), 0) AS days").
		Where("user_id = ? AND kind IN ?", userID, []string{EntryApprove, EntryCancel}).
		Group("leave_type").
		Scan(&rows).Error
	return toDaysMap(rows), err
}

func toDaysMap(rows []daysByType) map[string]int {
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.LeaveType] = row.Days
	}
	return out
}

func (r *repository) ownerQuery(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Table("users").
		Select("id, name, official_email, personal_email, onboarding_status").
		Where("deleted_at IS NULL")
}

func (r *repository) FindOwner(ctx context.Context, userID string) (*Owner, error) {
	var o Owner
	err := r.ownerQuery(ctx).Where("id = ?", userID).Take(&o).Error
	return &o, err
}

// LockOwner mengunci baris Person sehingga apply cuti untuk orang yang sama berjalan serial.
func (r *repository) LockOwner(ctx context.Context, userID string) (*Owner, error) {
	var o Owner
	err := r.ownerQuery(ctx).
		Where("id = ?", userID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&o).Error
	return &o, err
}

func (r *repository) FindOwners(ctx context.Context, userIDs []string) ([]Owner, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var owners []Owner
	err := r.ownerQuery(ctx).Where("id IN ?", userIDs).Find(&owners).Error
	return owners, err
}
