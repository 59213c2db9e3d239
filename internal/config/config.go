// Package config loads process configuration from GYMDESK_-prefixed
// environment variables, with a .env file picked up automatically when
// present.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object.
type Config struct {
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// DatabaseConfig holds the SQLite file location and connection tuning.
type DatabaseConfig struct {
	// Path is the database file; ":memory:" runs fully in-memory.
	Path          string `koanf:"path" validate:"required"`
	MaxOpenConns  int    `koanf:"max_open_conns" validate:"gte=1"`
	BusyTimeoutMS int    `koanf:"busy_timeout_ms" validate:"gte=0"`
}

// defaults returns the configuration used when no env vars are set.
func defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:          "gymdesk.db",
			MaxOpenConns:  25,
			BusyTimeoutMS: 5000,
		},
	}
}

// Load reads GYMDESK_-prefixed env vars over the defaults and validates the
// result. Nested keys map with a single underscore split, so
// GYMDESK_DATABASE_MAX_OPEN_CONNS becomes database.max_open_conns.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider("GYMDESK_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "GYMDESK_")), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
