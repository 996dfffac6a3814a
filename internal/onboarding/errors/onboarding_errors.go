package onboardingerrors

import (
	"net/http"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrDuplicateIdentity = apperror.New(
		apperror.CodeConflict,
		"a user with this email or mobile number already exists",
		http.StatusConflict,
	)
	ErrInvalidInviteExpiry = apperror.New(
		apperror.CodeInvalidInput,
		"invite_expiry_time must be in the future",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be one of ADMIN, HR, EMPLOYEE",
		http.StatusBadRequest,
	)
	ErrInvitationExpired = apperror.New(
		apperror.CodeExpired,
		"invitation has expired, please ask HR to resend it",
		http.StatusGone,
	)
	ErrNotInvited = apperror.New(
		apperror.CodeInvalidState,
		"invitation can only be resent while onboarding is INVITED",
		http.StatusConflict,
	)
	ErrInvalidStageTransition = apperror.New(
		apperror.CodeInvalidState,
		"onboarding is not in a stage that allows this action",
		http.StatusConflict,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"decision must be approve or reject",
		http.StatusBadRequest,
	)
	ErrMissingOfficialEmail = apperror.New(
		apperror.CodeInvalidInput,
		"official_email is required to approve onboarding",
		http.StatusBadRequest,
	)
	ErrInvalidEmailFormat = apperror.New(
		apperror.CodeInvalidInput,
		"official_email is not a valid email address",
		http.StatusBadRequest,
	)
	ErrEmailInUse = apperror.New(
		apperror.CodeConflict,
		"official email is already in use",
		http.StatusConflict,
	)
	ErrSelfReview = apperror.New(
		apperror.CodeForbidden,
		"you cannot review your own onboarding",
		http.StatusForbidden,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"date_of_birth must use YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDirectNotifierUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"approval email requires a direct mailer, smtp is not configured",
		http.StatusServiceUnavailable,
	)
)
