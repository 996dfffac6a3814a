package onboarding

import (
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

type InviteRequest struct {
	Name             string     `json:"name" binding:"required,min=2,max=255"`
	PhoneNumber      string     `json:"phone_number" binding:"required,min=8,max=20"`
	PersonalEmail    string     `json:"personal_email" binding:"required,email"`
	Email            *string    `json:"email" binding:"omitempty,email"`
	Role             string     `json:"role" binding:"omitempty,oneof=ADMIN HR EMPLOYEE"`
	Department       *string    `json:"department" binding:"omitempty,max=100"`
	JobTitle         *string    `json:"job_title" binding:"omitempty,max=100"`
	InviteExpiryTime *time.Time `json:"invite_expiry_time"`
}

type InviteResponse struct {
	InvitationURL string            `json:"invitation_url"`
	Message       string            `json:"message"`
	User          user.UserResponse `json:"user"`
}

type OTPRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required,min=8,max=20"`
}

type OTPResponse struct {
	Message          string `json:"message"`
	MobileNumber     string `json:"mobile_number"`
	ExpiresAt        string `json:"expires_at"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

type VerifyOTPRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required,min=8,max=20"`
	OTP          string `json:"otp" binding:"required,len=6,numeric"`
}

type VerifyOTPResponse struct {
	User         user.UserResponse `json:"user"`
	SessionToken string            `json:"session_token"`
	ExpiresIn    int               `json:"expires_in"`
}

// SubmitRequest: field nil berarti tidak diubah.
type SubmitRequest struct {
	Name                  *string `json:"name" binding:"omitempty,min=2,max=255"`
	PersonalEmail         *string `json:"personal_email" binding:"omitempty,email"`
	DateOfBirth           *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender                *string `json:"gender" binding:"omitempty,max=20"`
	Address               *string `json:"address" binding:"omitempty,max=500"`
	City                  *string `json:"city" binding:"omitempty,max=100"`
	State                 *string `json:"state" binding:"omitempty,max=100"`
	PostalCode            *string `json:"postal_code" binding:"omitempty,max=20"`
	Country               *string `json:"country" binding:"omitempty,max=100"`
	Department            *string `json:"department" binding:"omitempty,max=100"`
	JobTitle              *string `json:"job_title" binding:"omitempty,max=100"`
	ReportingManager      *string `json:"reporting_manager" binding:"omitempty,max=255"`
	EmergencyContactName  *string `json:"emergency_contact_name" binding:"omitempty,max=255"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" binding:"omitempty,max=20"`
	BankAccountNumber     *string `json:"bank_account_number" binding:"omitempty,max=50"`
	BankName              *string `json:"bank_name" binding:"omitempty,max=100"`
	IFSCCode              *string `json:"ifsc_code" binding:"omitempty,max=20"`
	PANNumber             *string `json:"pan_number" binding:"omitempty,max=20"`
	NationalID            *string `json:"national_id" binding:"omitempty,max=50"`
}

type ReviewRequest struct {
	Decision      string `json:"decision" binding:"required,oneof=approve reject"`
	Comments      string `json:"comments" binding:"max=1000"`
	OfficialEmail string `json:"official_email"`
}

const (
	ManagerResolved  = "resolved"
	ManagerAmbiguous = "ambiguous"
	ManagerNotFound  = "not_found"
)

// ManagerResolution adalah hasil tri-state pencocokan nama reporting manager.
type ManagerResolution struct {
	Status     string   `json:"status"`
	ManagerID  *string  `json:"manager_id,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
}

type ReviewResponse struct {
	User              user.UserResponse  `json:"user"`
	Message           string             `json:"message"`
	NotificationSent  bool               `json:"notification_sent"`
	ManagerResolution *ManagerResolution `json:"manager_resolution,omitempty"`
}

type MessageResponse struct {
	User    user.UserResponse `json:"user"`
	Message string            `json:"message"`
}

type StatusResponse struct {
	OnboardingStatus string            `json:"onboarding_status"`
	Status           string            `json:"status"`
	NextStep         string            `json:"next_step"`
	User             user.UserResponse `json:"user"`
}
