package otperrors

import (
	"net/http"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/apperror"
)

var (
	ErrMobileRequired = apperror.RequiredField("mobile_number")

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"No invitation found for this mobile number",
		http.StatusNotFound,
	)

	ErrOnboardingAlreadyCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Onboarding is already completed, please sign in with your password",
		http.StatusConflict,
	)

	ErrInvitationExpired = apperror.New(
		apperror.CodeExpired,
		"Invitation has expired, please ask HR for a new one",
		http.StatusGone,
	)

	ErrInvalidOrExpiredOTP = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid or expired OTP",
		http.StatusBadRequest,
	)

	ErrOTPExpired = apperror.New(
		apperror.CodeExpired,
		"OTP has expired, please request a new one",
		http.StatusGone,
	)

	ErrTooManyAttempts = apperror.New(
		apperror.CodeRateLimited,
		"Too many wrong OTP attempts, please request a new one",
		http.StatusTooManyRequests,
	)

	ErrOTPDeliveryFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Could not deliver the OTP, please try again",
		http.StatusServiceUnavailable,
	)
)
