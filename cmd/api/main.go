// Package main is the entry point for the account microservice.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codewithemma/account-microservice/internal/api"
	"github.com/codewithemma/account-microservice/internal/infrastructure/config"
	"github.com/codewithemma/account-microservice/internal/infrastructure/db/mysql"
	"github.com/codewithemma/account-microservice/internal/infrastructure/notify"
	"github.com/codewithemma/account-microservice/internal/infrastructure/queue"
	"github.com/codewithemma/account-microservice/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; in production everything comes from the environment.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := mysql.Connect(mysql.Config{DSN: cfg.MySQL.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	notifier := notify.NewClient(cfg.Notification.Endpoint)
	dispatcher := queue.NewDispatcher(cfg.Notification.Workers, cfg.Notification.Timeout, notifier, log)

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	dispatcher.Start(workerCtx)

	e := api.NewRouter(db, cfg, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	// Drain pending notifications before releasing the workers; each delivery
	// is bounded by its own timeout.
	dispatcher.Stop()
	cancelWorkers()

	log.Info().Msg("server stopped")
}
