package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the dashboard, the foods backend and
// the catalog worker. Values come from the environment, optionally seeded
// from a .env file in the working directory.
type Config struct {
	APIURL     string
	ListenAddr string
	Store      string
	SeedFile   string
	Temporal   TemporalConfig
	LogLevel   string
}

type TemporalConfig struct {
	Address     string
	Namespace   string
	TaskQueue   string
	MetricsAddr string
}

const (
	StoreMemory   = "memory"
	StoreTemporal = "temporal"
)

// Load reads configuration from the environment. It does not validate: flags
// may still override the values, so callers run Validate once they are set.
func Load() (*Config, error) {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env: %w", err)
	}

	cfg := &Config{
		APIURL:     getEnv("FOODS_API_URL", "http://localhost:3333"),
		ListenAddr: getEnv("FOODS_LISTEN_ADDR", "0.0.0.0:3333"),
		Store:      getEnv("FOODS_STORE", StoreMemory),
		SeedFile:   getEnv("FOODS_SEED_FILE", ""),
		Temporal: TemporalConfig{
			Address:     getEnv("TEMPORAL_ADDRESS", "localhost:7233"),
			Namespace:   getEnv("TEMPORAL_NAMESPACE", "default"),
			TaskQueue:   getEnv("FOODS_TASK_QUEUE", "foods"),
			MetricsAddr: getEnv("METRICS_ADDR", "0.0.0.0:9092"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later in a less obvious
// place.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("FOODS_API_URL must be an absolute URL, got %q", c.APIURL)
	}

	if c.ListenAddr == "" {
		return fmt.Errorf("FOODS_LISTEN_ADDR is required")
	}

	switch c.Store {
	case StoreMemory, StoreTemporal:
	default:
		return fmt.Errorf("invalid store: %s (must be %s or %s)", c.Store, StoreMemory, StoreTemporal)
	}

	if c.Temporal.TaskQueue == "" {
		return fmt.Errorf("FOODS_TASK_QUEUE is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
