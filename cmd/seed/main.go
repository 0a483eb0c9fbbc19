// Command seed force-refreshes the stored recipe collection with the
// sample dataset.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/foodieapp/backend/config"
	"github.com/foodieapp/backend/internal/seed"
	"github.com/foodieapp/backend/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var kv store.KV
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		kv, err = store.OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		kv, err = store.OpenPostgres(cfg.PostgresDSN)
	case config.DriverRedis:
		kv, err = store.OpenRedis(cfg.RedisURL)
	default:
		logger.Fatal().Str("driver", cfg.StorageDriver).Msg("seeding requires a durable storage driver")
	}
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	recipes, err := seed.Refresh(ctx, store.New(kv, logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to refresh sample data")
	}

	logger.Info().Int("recipes", len(recipes)).Msg("sample data refreshed")
}
