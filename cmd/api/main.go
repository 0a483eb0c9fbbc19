package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/foodieapp/backend/config"
	"github.com/foodieapp/backend/internal/server"
	"github.com/foodieapp/backend/internal/service"
	"github.com/foodieapp/backend/internal/store"
)

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg)

	kv, err := openKV(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
	}
	st := store.New(kv, logger)

	notifications := service.NewNotificationService(logger)
	auth, err := service.NewAuthService(cfg.JWTSecret, cfg.SampleUserPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create auth service")
	}
	recipes := service.NewRecipeService(st, notifications, logger)

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := recipes.Load(loadCtx); err != nil {
		logger.Fatal().Err(err).Msg("failed to load recipe catalog")
	}

	srv := server.New(cfg, recipes, notifications, auth, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if cfg.Environment == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}

func openKV(cfg *config.Config) (store.KV, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return store.OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		return store.OpenPostgres(cfg.PostgresDSN)
	case config.DriverRedis:
		return store.OpenRedis(cfg.RedisURL)
	default:
		return store.NewMemoryKV(), nil
	}
}
