package holiday

import (
	"errors"
	"strings"

	holidayerrors "github.com/saxena100parth/codriva-hrms-sub002/internal/holiday/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return holidayerrors.ErrHolidayNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_holidays_date" {
		return holidayerrors.ErrDuplicateDate
	}

	if strings.Contains(strings.ToLower(err.Error()), "uq_holidays_date") {
		return holidayerrors.ErrDuplicateDate
	}

	return err
}
