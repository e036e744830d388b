// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends accepted by Config.Storage.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// ID formats accepted by Config.IDFormat.
const (
	IDFormatULID = "ulid"
	IDFormatUUID = "uuid"
)

// Config holds all configuration for the application
type Config struct {
	// Storage selects the backing store: memory, redis, or sqlite.
	Storage string `env:"STORAGE" envDefault:"memory"`

	// RedisURL is the connection URL used when Storage is redis.
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`

	// SQLitePath is the database file used when Storage is sqlite.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"forge.db"`

	// DraftTTLHours is how long an untouched draft survives.
	DraftTTLHours int `env:"DRAFT_TTL_HOURS" envDefault:"24"`

	// IDFormat selects ulid (sortable) or uuid identifiers.
	IDFormat string `env:"ID_FORMAT" envDefault:"ulid"`

	// ContentDir is an optional directory of TOML content packs merged
	// into the built-in catalog at startup.
	ContentDir string `env:"CONTENT_DIR"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("STORAGE must be %s, %s, or %s (got %q)", StorageMemory, StorageRedis, StorageSQLite, c.Storage)
	}
	switch c.IDFormat {
	case IDFormatULID, IDFormatUUID:
	default:
		return fmt.Errorf("ID_FORMAT must be %s or %s (got %q)", IDFormatULID, IDFormatUUID, c.IDFormat)
	}
	if c.DraftTTLHours <= 0 {
		return fmt.Errorf("DRAFT_TTL_HOURS must be positive (got %d)", c.DraftTTLHours)
	}
	return nil
}

// DraftTTL returns the configured draft lifetime as a duration.
func (c *Config) DraftTTL() time.Duration {
	return time.Duration(c.DraftTTLHours) * time.Hour
}
