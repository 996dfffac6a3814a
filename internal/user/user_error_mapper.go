package user

import (
	"errors"
	"strings"

	usererrors "github.com/saxena100parth/codriva-hrms-sub002/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError menerjemahkan error gorm/postgres menjadi error domain user.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if mapped := constraintError(pgErr.ConstraintName); mapped != nil {
			return mapped
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		for _, name := range []string{"uq_users_official_email", "uq_users_mobile_number", "uq_users_employee_id"} {
			if strings.Contains(errMsg, name) {
				return constraintError(name)
			}
		}
	}

	return err
}

func constraintError(name string) error {
	switch name {
	case "uq_users_official_email":
		return usererrors.ErrEmailInUse
	case "uq_users_mobile_number":
		return usererrors.ErrMobileInUse
	case "uq_users_employee_id":
		return usererrors.ErrEmployeeIDConflict
	}
	return nil
}
