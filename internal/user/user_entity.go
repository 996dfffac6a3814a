package user

import (
	"strings"
	"time"

	usererrors "github.com/saxena100parth/codriva-hrms-sub002/internal/user/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)

const (
	StatusDraft    = "DRAFT"
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusDeleted  = "DELETED"
)

const (
	OnboardingInvited   = "INVITED"
	OnboardingPending   = "PENDING"
	OnboardingSubmitted = "SUBMITTED"
	OnboardingApproved  = "APPROVED"
	OnboardingRejected  = "REJECTED"
	OnboardingCompleted = "COMPLETED"
)

// User adalah Person: kredensial login sekaligus data profil/HR.
type User struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"column:name;type:varchar(255);not null"`
	OfficialEmail *string   `gorm:"column:official_email;type:text;uniqueIndex:uq_users_official_email"`
	PersonalEmail string    `gorm:"column:personal_email;type:text;not null"`
	MobileNumber  string    `gorm:"column:mobile_number;type:varchar(20);not null;uniqueIndex:uq_users_mobile_number"`

	Role             string `gorm:"column:role;type:varchar(20);not null;default:EMPLOYEE"`
	Status           string `gorm:"column:status;type:varchar(20);not null;default:DRAFT;index"`
	OnboardingStatus string `gorm:"column:onboarding_status;type:varchar(20);not null;default:INVITED;index"`

	PasswordHash         *string    `gorm:"column:password_hash;type:text"`
	HasTemporaryPassword bool       `gorm:"column:has_temporary_password;default:false"`
	PasswordChangedAt    *time.Time `gorm:"column:password_changed_at"`
	FailedLoginAttempts  int        `gorm:"column:failed_login_attempts;default:0"`
	LockedUntil          *time.Time `gorm:"column:locked_until"`

	InvitationToken  *string    `gorm:"column:invitation_token;type:varchar(64)"`
	InviteExpiryTime *time.Time `gorm:"column:invite_expiry_time"`
	InvitedBy        *uuid.UUID `gorm:"column:invited_by;type:uuid"`

	EmployeeID           *string    `gorm:"column:employee_id;type:varchar(20);uniqueIndex:uq_users_employee_id"`
	Department           *string    `gorm:"column:department;type:varchar(100)"`
	JobTitle             *string    `gorm:"column:job_title;type:varchar(100)"`
	ReportingManagerID   *uuid.UUID `gorm:"column:reporting_manager_id;type:uuid"`
	ReportingManagerName *string    `gorm:"column:reporting_manager_name;type:varchar(255)"`

	DateOfBirth           *time.Time `gorm:"column:date_of_birth;type:date"`
	Gender                *string    `gorm:"column:gender;type:varchar(20)"`
	Address               *string    `gorm:"column:address;type:text"`
	City                  *string    `gorm:"column:city;type:varchar(100)"`
	State                 *string    `gorm:"column:state;type:varchar(100)"`
	PostalCode            *string    `gorm:"column:postal_code;type:varchar(20)"`
	Country               *string    `gorm:"column:country;type:varchar(100)"`
	EmergencyContactName  *string    `gorm:"column:emergency_contact_name;type:varchar(255)"`
	EmergencyContactPhone *string    `gorm:"column:emergency_contact_phone;type:varchar(20)"`
	BankAccountNumber     *string    `gorm:"column:bank_account_number;type:varchar(50)"`
	BankName              *string    `gorm:"column:bank_name;type:varchar(100)"`
	IFSCCode              *string    `gorm:"column:ifsc_code;type:varchar(20)"`
	PANNumber             *string    `gorm:"column:pan_number;type:varchar(20)"`
	NationalID            *string    `gorm:"column:national_id;type:varchar(50)"`

	OnboardingSubmittedAt *time.Time `gorm:"column:onboarding_submitted_at"`
	OnboardingReviewedAt  *time.Time `gorm:"column:onboarding_reviewed_at"`
	OnboardingReviewedBy  *uuid.UUID `gorm:"column:onboarding_reviewed_by;type:uuid"`
	OnboardingRemarks     *string    `gorm:"column:onboarding_remarks;type:text"`
	OnboardingCompletedAt *time.Time `gorm:"column:onboarding_completed_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}

// Validate dipanggil sebelum setiap persist.
func (u *User) Validate() error {
	if strings.TrimSpace(u.PersonalEmail) == "" {
		return usererrors.ErrPersonalEmailRequired
	}
	if strings.TrimSpace(u.MobileNumber) == "" {
		return usererrors.ErrMobileRequired
	}
	if (u.Role == RoleAdmin || u.Status == StatusActive) && u.Email() == "" {
		return usererrors.ErrOfficialEmailRequired
	}
	return nil
}

// Email returns the official email or "" when it has not been assigned yet.
func (u *User) Email() string {
	if u.OfficialEmail == nil {
		return ""
	}
	return *u.OfficialEmail
}

func (u *User) SetOfficialEmail(email string) {
	v := strings.ToLower(strings.TrimSpace(email))
	u.OfficialEmail = &v
}

// AssignEmployeeID sets employee_id once; a second assignment is rejected.
func (u *User) AssignEmployeeID(id string) error {
	if u.EmployeeID != nil && *u.EmployeeID != "" {
		if *u.EmployeeID == id {
			return nil
		}
		return usererrors.ErrEmployeeIDImmutable
	}
	u.EmployeeID = &id
	return nil
}

func (u *User) InvitationExpired(now time.Time) bool {
	return u.InviteExpiryTime != nil && !now.Before(*u.InviteExpiryTime)
}

func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusActive, StatusInactive, StatusDeleted:
		return true
	}
	return false
}
