package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/config"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/holiday"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/leave"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/messaging/kafka"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/middleware"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/connection"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/counter"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp menyiapkan infrastruktur lalu mendaftarkan semua module ke router.
// cleanup menutup koneksi DB dan Redis.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")

	// 1. Setup Infrastructure
	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info("redis connection established")

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrate(ctx, gormDB, sqlDB); err != nil {
		cleanup()
		return nil, err
	}
	log.Info("schema migrated")

	router.Use(middleware.RequestID())

	// 2. Register Modules & Routes
	if err := registerModules(ctx, router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}

func connectDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.MaxRetries,
	)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "get sql.DB from gorm failed")
	}
	return gormDB, sqlDB, nil
}

func migrate(ctx context.Context, gormDB *gorm.DB, sqlDB *sql.DB) error {
	if err := gormDB.WithContext(ctx).AutoMigrate(
		&user.User{},
		&counter.Counter{},
		&holiday.Holiday{},
		&leave.Leave{},
		&leave.Balance{},
		&leave.LedgerEntry{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}
	if err := kafka.EnsureOutboxSchema(ctx, sqlDB); err != nil {
		return errors.Wrap(err, "ensure outbox schema failed")
	}
	return nil
}
