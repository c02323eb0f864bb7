// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds everything the client needs to reach the backend.
type Config struct {
	// Endpoint is the fixed GraphQL HTTP endpoint.
	Endpoint string

	// Timeout bounds each HTTP request. Zero means no client timeout.
	Timeout time.Duration

	// LogFile, when set, receives structured logs in TUI mode (stdout is
	// owned by the terminal UI there).
	LogFile string

	// Verbose enables debug-level logging.
	Verbose bool
}

// Load reads configuration from the environment with defaults.
func Load() *Config {
	return &Config{
		Endpoint: getEnv("BANKTUI_ENDPOINT", "http://localhost:8080/graphql"),
		Timeout:  getEnvDuration("BANKTUI_TIMEOUT", 0),
		LogFile:  getEnv("BANKTUI_LOG_FILE", ""),
	}
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", c.Endpoint)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
