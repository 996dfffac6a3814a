package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const (
	TypeAnnual    = "annual"
	TypeSick      = "sick"
	TypePersonal  = "personal"
	TypeMaternity = "maternity"
	TypePaternity = "paternity"
)

// Types dalam urutan tampil.
var Types = []string{TypeAnnual, TypeSick, TypePersonal, TypeMaternity, TypePaternity}

func IsValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

const (
	EntryApprove = "APPROVE"
	EntryCancel  = "CANCEL"
	EntryAdjust  = "ADJUST"
)

type Leave struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_user_dates"`

	LeaveType    string    `gorm:"type:varchar(20);not null"`
	StartDate    time.Time `gorm:"type:date;not null;index:idx_leaves_user_dates"`
	EndDate      time.Time `gorm:"type:date;not null;index:idx_leaves_user_dates"`
	NumberOfDays int       `gorm:"type:int;not null"`
	Reason       string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_status"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectionReason *string `gorm:"type:text"`
	CancelledAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Leave) TableName() string {
	return "leaves"
}

// Balance adalah counter denormalisasi per (user, jenis cuti).
// Hanya ledger engine yang menulis kolom taken.
type Balance struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeaveType string    `gorm:"type:varchar(20);primaryKey"`
	Balance   int       `gorm:"type:int;not null;default:0"`
	Taken     int       `gorm:"type:int;not null;default:0;check:chk_leave_balances_taken,taken >= 0"`
	UpdatedAt time.Time
}

func (Balance) TableName() string {
	return "leave_balances"
}

func (b Balance) Available() int {
	return b.Balance - b.Taken
}

// LedgerEntry mencatat setiap perubahan counter (append-only).
// Days adalah delta taken untuk APPROVE/CANCEL dan delta balance untuk ADJUST.
type LedgerEntry struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_ledger_user_type"`
	LeaveType string     `gorm:"type:varchar(20);not null;index:idx_leave_ledger_user_type"`
	LeaveID   *uuid.UUID `gorm:"type:uuid;index"`
	Kind      string     `gorm:"type:varchar(20);not null"`
	Days      int        `gorm:"type:int;not null"`
	ActorID   uuid.UUID  `gorm:"type:uuid;not null"`
	Note      string     `gorm:"type:text"`
	CreatedAt time.Time
}

func (LedgerEntry) TableName() string {
	return "leave_ledger_entries"
}

// Owner adalah potongan data Person yang dibutuhkan modul cuti.
type Owner struct {
	ID               uuid.UUID
	Name             string
	OfficialEmail    *string
	PersonalEmail    string
	OnboardingStatus string
}

func (o Owner) Email() string {
	if o.OfficialEmail != nil && *o.OfficialEmail != "" {
		return *o.OfficialEmail
	}
	return o.PersonalEmail
}
