package leave

import (
	"context"
	"time"
)

const DateLayout = "2006-01-02"

// HolidayChecker dipenuhi oleh holiday.Service.
type HolidayChecker interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CountBusinessDays menghitung hari kerja inklusif di [start, end],
// melewati Sabtu, Minggu dan hari libur. holidays boleh nil.
func CountBusinessDays(ctx context.Context, holidays HolidayChecker, start, end time.Time) (int, error) {
	start = dateOnly(start)
	end = dateOnly(end)
	if end.Before(start) {
		return 0, nil
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWeekend(d) {
			continue
		}
		if holidays != nil {
			off, err := holidays.IsHoliday(ctx, d)
			if err != nil {
				return 0, err
			}
			if off {
				continue
			}
		}
		days++
	}
	return days, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return dateOnly(time.Now())
}
