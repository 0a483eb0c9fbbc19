// Package config loads the service configuration from environment
// variables.
package config

import (
	"fmt"
	"net"
	"os"
	"strings"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	ServerHost  string
	ServerPort  string

	// Storage
	StorageDriver string
	SQLitePath    string
	PostgresDSN   string
	RedisURL      string

	// Auth stub
	JWTSecret          string
	SampleUserPassword string

	AllowedOrigins []string
	LogLevel       string
}

// Load reads configuration from the environment, applying development
// defaults, and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:        getenv("APP_ENV", "development"),
		ServerHost:         getenv("SERVER_HOST", "0.0.0.0"),
		ServerPort:         getenv("SERVER_PORT", "8080"),
		StorageDriver:      getenv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath:         getenv("SQLITE_PATH", "foodie.db"),
		PostgresDSN:        os.Getenv("POSTGRES_DSN"),
		RedisURL:           os.Getenv("REDIS_URL"),
		JWTSecret:          getenv("JWT_SECRET", "dev-secret"),
		SampleUserPassword: getenv("SAMPLE_USER_PASSWORD", "sample-password"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if v := strings.TrimSpace(o); v != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, v)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required with the sqlite driver")
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required with the postgres driver")
		}
	case DriverRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required with the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}

	if c.Environment == "production" && c.JWTSecret == "dev-secret" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

// ServerAddr returns the host:port the server binds to.
func (c *Config) ServerAddr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
