package holiday_test

import (
	"testing"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/holiday"

	"github.com/stretchr/testify/assert"
)

func TestHoliday_OccurrenceIn(t *testing.T) {
	tests := []struct {
		name    string
		holiday holiday.Holiday
		year    int
		want    string
		ok      bool
	}{
		{"one-off in its own year", holiday.Holiday{Date: day(2026, time.May, 1)}, 2026, "2026-05-01", true},
		{"one-off in another year", holiday.Holiday{Date: day(2026, time.May, 1)}, 2027, "", false},
		{"recurring later year", holiday.Holiday{Date: day(2026, time.May, 1), IsRecurring: true}, 2029, "2029-05-01", true},
		{"recurring before origin", holiday.Holiday{Date: day(2026, time.May, 1), IsRecurring: true}, 2025, "", false},
		{"leap day skipped", holiday.Holiday{Date: day(2028, time.February, 29), IsRecurring: true}, 2029, "", false},
		{"leap day kept", holiday.Holiday{Date: day(2028, time.February, 29), IsRecurring: true}, 2032, "2032-02-29", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.holiday.OccurrenceIn(tt.year)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.Format(holiday.DateLayout))
			}
		})
	}
}
