package user

import "time"

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN HR EMPLOYEE"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT ACTIVE INACTIVE DELETED"`
}

type LinkManagerRequest struct {
	ManagerID string `json:"manager_id" binding:"required,uuid"`
}

// UserResponse adalah representasi Person tanpa kredensial.
type UserResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Email                 *string `json:"email,omitempty"`
	PersonalEmail         string  `json:"personal_email"`
	MobileNumber          string  `json:"mobile_number"`
	Role                  string  `json:"role"`
	Status                string  `json:"status"`
	OnboardingStatus      string  `json:"onboarding_status"`
	HasTemporaryPassword  bool    `json:"has_temporary_password"`
	EmployeeID            *string `json:"employee_id,omitempty"`
	Department            *string `json:"department,omitempty"`
	JobTitle              *string `json:"job_title,omitempty"`
	ReportingManagerID    *string `json:"reporting_manager_id,omitempty"`
	ReportingManagerName  *string `json:"reporting_manager_name,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	Gender                *string `json:"gender,omitempty"`
	Address               *string `json:"address,omitempty"`
	City                  *string `json:"city,omitempty"`
	State                 *string `json:"state,omitempty"`
	PostalCode            *string `json:"postal_code,omitempty"`
	Country               *string `json:"country,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	OnboardingSubmittedAt *string `json:"onboarding_submitted_at,omitempty"`
	OnboardingReviewedAt  *string `json:"onboarding_reviewed_at,omitempty"`
	OnboardingRemarks     *string `json:"onboarding_remarks,omitempty"`
	OnboardingCompletedAt *string `json:"onboarding_completed_at,omitempty"`
	InviteExpiryTime      *string `json:"invite_expiry_time,omitempty"`
	CreatedAt             string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:                    u.ID.String(),
		Name:                  u.Name,
		Email:                 u.OfficialEmail,
		PersonalEmail:         u.PersonalEmail,
		MobileNumber:          u.MobileNumber,
		Role:                  u.Role,
		Status:                u.Status,
		OnboardingStatus:      u.OnboardingStatus,
		HasTemporaryPassword:  u.HasTemporaryPassword,
		EmployeeID:            u.EmployeeID,
		Department:            u.Department,
		JobTitle:              u.JobTitle,
		ReportingManagerName:  u.ReportingManagerName,
		Gender:                u.Gender,
		Address:               u.Address,
		City:                  u.City,
		State:                 u.State,
		PostalCode:            u.PostalCode,
		Country:               u.Country,
		EmergencyContactName:  u.EmergencyContactName,
		EmergencyContactPhone: u.EmergencyContactPhone,
		OnboardingRemarks:     u.OnboardingRemarks,
		OnboardingSubmittedAt: formatTime(u.OnboardingSubmittedAt, time.RFC3339),
		OnboardingReviewedAt:  formatTime(u.OnboardingReviewedAt, time.RFC3339),
		OnboardingCompletedAt: formatTime(u.OnboardingCompletedAt, time.RFC3339),
		InviteExpiryTime:      formatTime(u.InviteExpiryTime, time.RFC3339),
		DateOfBirth:           formatTime(u.DateOfBirth, "2006-01-02"),
		CreatedAt:             u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.ReportingManagerID != nil {
		v := u.ReportingManagerID.String()
		resp.ReportingManagerID = &v
	}
	return resp
}

func ToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = ToResponse(u)
	}
	return resp
}

func formatTime(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	v := t.Format(layout)
	return &v
}
