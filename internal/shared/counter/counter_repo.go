package counter

import (
	"context"
	"database/sql"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/connection"

	"gorm.io/gorm"
)

const TypeEmployeeID = "employee_id"

// Counter adalah baris sequence per tipe (tabel counters)
type Counter struct {
	CounterType string `gorm:"column:counter_type;type:varchar(50);primaryKey"`
	LastValue   int64  `gorm:"column:last_value;not null;default:0"`
	UpdatedAt   int64  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Counter) TableName() string {
	return "counters"
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// GetNextValue menaikkan counter secara atomik. Bila dipanggil di dalam transaksi,
// kenaikan ikut di-rollback sehingga penomoran tetap rapat.
func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	err := connection.Conn(ctx, r.db, r.tx).Raw(`
		INSERT INTO counters (counter_type, last_value, updated_at)
		VALUES (?, 1, extract(epoch from now())::bigint)
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = extract(epoch from now())::bigint
		RETURNING last_value
	`, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
