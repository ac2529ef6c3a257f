package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration read from the environment
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	// RedisURL is required when StorageType is "redis"
	RedisURL string `env:"REDIS_URL"`

	// CatalogPath points at a JSON exercise definition file.
	// Empty means the built-in default set.
	CatalogPath string `env:"CATALOG_PATH"`

	// AdminToken guards the hard-reset endpoint. Empty disables it.
	AdminToken string `env:"ADMIN_TOKEN"`

	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
