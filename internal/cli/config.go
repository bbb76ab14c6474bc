package cli

import (
	"os"
	"time"
)

// Config holds CLI configuration. Flags override the MOVIECAT_* environment.
type Config struct {
	ServerURL string
	Output    string
	Timeout   time.Duration
	Verbose   bool
}

// DefaultConfig reads the defaults from the environment
func DefaultConfig() *Config {
	return &Config{
		ServerURL: envString("MOVIECAT_SERVER", "http://localhost:8080"),
		Output:    envString("MOVIECAT_OUTPUT", "text"),
		Timeout:   envDuration("MOVIECAT_TIMEOUT", 30*time.Second),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration ignores values time.ParseDuration rejects
func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}
