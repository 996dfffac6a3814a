package holiday

import (
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type Holiday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Date        time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_holidays_date"`
	Name        string    `gorm:"column:name;type:varchar(150);not null"`
	Description *string   `gorm:"column:description;type:text"`
	IsRecurring bool      `gorm:"column:is_recurring;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Holiday) TableName() string {
	return "holidays"
}

// OccurrenceIn mengembalikan tanggal libur di tahun year. Libur berulang
// berlaku setiap tahun sejak tahun asalnya; 29 Feb dilewati di tahun non-kabisat.
func (h Holiday) OccurrenceIn(year int) (time.Time, bool) {
	if h.Date.Year() == year {
		return h.Date, true
	}
	if !h.IsRecurring || h.Date.Year() > year {
		return time.Time{}, false
	}
	d := time.Date(year, h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
	if d.Month() != h.Date.Month() {
		return time.Time{}, false
	}
	return d, true
}
