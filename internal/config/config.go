// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is read once at startup and treated as immutable
type Config struct {
	// Catalog
	CatalogURL       string
	CatalogAPIKey    string
	CatalogTimeout   time.Duration
	CatalogRateLimit float64

	// Storage
	StorageType    string
	RedisURL       string
	RedisKeyPrefix string

	// Presentation; nil when the ambient preference is unknown
	PrefersDark *bool

	// Server
	Port     string
	LogLevel string
}

// Load reads Config from the environment. It fails when a required variable
// is missing or a set value cannot be parsed.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.CatalogURL = os.Getenv("TMDB_API_URL")
	if cfg.CatalogURL == "" {
		missing = append(missing, "TMDB_API_URL")
	}

	cfg.CatalogAPIKey = os.Getenv("TMDB_API_KEY")
	if cfg.CatalogAPIKey == "" {
		missing = append(missing, "TMDB_API_KEY")
	}

	cfg.StorageType = getEnvString("STORAGE_TYPE", "memory")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		missing = append(missing, "REDIS_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.RedisKeyPrefix = getEnvString("REDIS_KEY_PREFIX", "moviecat")

	var err error
	if cfg.CatalogTimeout, err = getEnvDuration("CATALOG_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.CatalogRateLimit, err = getEnvFloat("CATALOG_RATE_LIMIT", 0); err != nil {
		return nil, err
	}

	cfg.Port = getEnvString("PORT", "8080")
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")

	if v := os.Getenv("PREFERS_DARK"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PREFERS_DARK %q: %w", v, err)
		}
		cfg.PrefersDark = &b
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
