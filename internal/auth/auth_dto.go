package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type AuthResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Email                string  `json:"email"`
	Role                 string  `json:"role"`
	Status               string  `json:"status"`
	OnboardingStatus     string  `json:"onboarding_status"`
	EmployeeID           *string `json:"employee_id,omitempty"`
	HasTemporaryPassword bool    `json:"has_temporary_password"`
}
