// Package config loads server configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
)

// Config holds the full server configuration
type Config struct {
	// Port is the HTTP listen port
	Port int
	// RedisAddr is the host:port of the Redis instance backing history
	RedisAddr string
	// PokeAPIBaseURL overrides the upstream API root
	PokeAPIBaseURL string
	// Language selects display-name localization
	Language string
	// HTTPTimeout bounds upstream requests
	HTTPTimeout time.Duration
	// CatalogLimit bounds the catalog to the first N entries
	CatalogLimit int
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err.Error())
	}

	cfg := &Config{
		Port:           envInt("PORT", 8080),
		RedisAddr:      envString("REDIS_ADDR", "localhost:6379"),
		PokeAPIBaseURL: envString("POKEAPI_BASE_URL", ""),
		Language:       envString("LANGUAGE", "ja"),
		HTTPTimeout:    envDuration("HTTP_TIMEOUT", 30*time.Second),
		CatalogLimit:   envInt("CATALOG_LIMIT", dex.CatalogSize),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for usable values
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.InvalidArgumentf("invalid port %d", c.Port)
	}
	if c.RedisAddr == "" {
		return errors.InvalidArgument("redis address is required")
	}
	if c.CatalogLimit <= 0 {
		return errors.InvalidArgumentf("invalid catalog limit %d", c.CatalogLimit)
	}
	if c.HTTPTimeout <= 0 {
		return errors.InvalidArgumentf("invalid http timeout %s", c.HTTPTimeout)
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed integer env var", "key", key, "value", v)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring malformed duration env var", "key", key, "value", v)
		return fallback
	}
	return d
}
