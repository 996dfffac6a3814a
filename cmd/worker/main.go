package main

import (
	"log"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/app"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/bootstrap"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/config"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunWorker(cfg, logger); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
