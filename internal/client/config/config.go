// Package config loads runtime settings for the snooze CLI from, in order of
// increasing precedence: built-in defaults, a JSON file (-c/-config),
// SNOOZE_* environment variables, and command-line flags.
package config

import (
	"context"
	"time"
)

// Config holds runtime settings for the snooze CLI.
type Config struct {
	// APIBaseURL is the base URL of the story API.
	APIBaseURL string
	// DatabasePath is the sqlite file holding the persisted session.
	DatabasePath string
	// RequestTimeout bounds each API call; there is no retry.
	RequestTimeout time.Duration
	// LogLevel is the minimum level: trace, debug, info, warn, error.
	LogLevel string
	// LogPretty switches log output from JSON to console format.
	LogPretty bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "snooze.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogPretty = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(context.Background(), cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
