package holidayerrors

import (
	"net/http"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/apperror"
)

var (
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"Holiday not found",
		http.StatusNotFound,
	)

	ErrInvalidHolidayID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid holiday ID",
		http.StatusBadRequest,
	)

	ErrDuplicateDate = apperror.New(
		apperror.CodeConflict,
		"A holiday already exists on this date",
		http.StatusConflict,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Year is invalid",
		http.StatusBadRequest,
	)

	ErrSameYear = apperror.New(
		apperror.CodeInvalidInput,
		"Source and target year must differ",
		http.StatusBadRequest,
	)
)
