package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"

	"github.com/mytheresa/go-calorie-service/app/calories"
	"github.com/mytheresa/go-calorie-service/app/routes"
	"github.com/mytheresa/go-calorie-service/config"
	"github.com/mytheresa/go-calorie-service/database"
	"github.com/mytheresa/go-calorie-service/logging"
	"github.com/mytheresa/go-calorie-service/lookup"
	"github.com/mytheresa/go-calorie-service/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logging.Setup(cfg.LogMode, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	dbLogLevel := logger.Warn
	if cfg.LogMode != "production" {
		dbLogLevel = logger.Info
	}
	db, err := database.Open(cfg.DSN(), dbLogLevel)
	if err != nil {
		zap.S().Fatalw("database unavailable", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		zap.S().Fatalw("migration failed", "error", err)
	}

	svc := calories.NewService(
		models.NewStore(db),
		lookup.NewClient(cfg.LookupURL, cfg.LookupTimeout),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.SetupRouter(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		zap.S().Infow("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-sigCh:
		zap.S().Info("received shutdown signal")
	case err := <-errCh:
		zap.S().Errorw("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("error during shutdown", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
