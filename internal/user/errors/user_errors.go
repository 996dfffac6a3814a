package usererrors

import (
	"net/http"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be one of ADMIN, HR, EMPLOYEE",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of DRAFT, ACTIVE, INACTIVE, DELETED",
		http.StatusBadRequest,
	)

	ErrPersonalEmailRequired = apperror.RequiredField("personal_email")

	ErrMobileRequired = apperror.RequiredField("mobile_number")

	ErrOfficialEmailRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Official email is required for ADMIN role or ACTIVE status",
		http.StatusBadRequest,
	)

	ErrEmailInUse = apperror.New(
		apperror.CodeConflict,
		"Email is already in use",
		http.StatusConflict,
	)

	ErrMobileInUse = apperror.New(
		apperror.CodeConflict,
		"Mobile number is already in use",
		http.StatusConflict,
	)

	ErrEmployeeIDConflict = apperror.New(
		apperror.CodeConflict,
		"Employee ID is already assigned",
		http.StatusConflict,
	)

	ErrEmployeeIDImmutable = apperror.New(
		apperror.CodeInvalidState,
		"Employee ID cannot be changed once assigned",
		http.StatusConflict,
	)

	ErrCannotDemoteSelf = apperror.New(
		apperror.CodeForbidden,
		"Admin cannot change their own role",
		http.StatusForbidden,
	)

	ErrInvalidManager = apperror.New(
		apperror.CodeInvalidInput,
		"Reporting manager must be another active user",
		http.StatusBadRequest,
	)
)
