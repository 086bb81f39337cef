// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_DB_HOST=db, APP_LOG_LEVEL=debug
type Config struct {
	// Database configuration (flattened env vars)
	Database DatabaseConfig

	// Logging configuration (flattened env vars)
	Log LogConfig
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// Host is the database host (default: localhost)
	Host string `envconfig:"DB_HOST" default:"localhost"`

	// Port is the database port (default: 5432)
	Port int `envconfig:"DB_PORT" default:"5432"`

	// User is the database user (default: postgres)
	User string `envconfig:"DB_USER" default:"postgres"`

	// Password is the database password
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`

	// Name is the database name (default: staffrecords)
	Name string `envconfig:"DB_NAME" default:"staffrecords"`

	// SSLMode is the SSL mode for the connection (default: disable)
	SSLMode string `envconfig:"DB_SSLMODE" default:"disable"`

	// ConnectTimeout bounds the initial connection attempt (default: 10s)
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`

	// SlowQuery is the threshold above which statements are logged at warn (default: 200ms)
	SlowQuery time.Duration `envconfig:"DB_SLOW_QUERY" default:"200ms"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: warn)
	Level string `envconfig:"LOG_LEVEL" default:"warn"`

	// Format is the log format: json, text, plain (default: text)
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Load reads configuration from environment variables.
// It returns an error if variables are present but invalid.
func Load() (*Config, error) {
	var cfg Config

	// Load each section separately so env vars stay flat (APP_DB_HOST, not APP_DATABASE_DB_HOST)
	if err := envconfig.Process("APP", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv copies KEY=VALUE pairs from a dotenv file into the process
// environment so that Load sees them. Variables that are already set are
// kept. When optional is true a missing file is ignored.
func LoadDotEnv(path string, optional bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
