package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig mirrors Config for environment lookups. Pointer fields
// distinguish "unset" from zero values.
type envConfig struct {
	APIBaseURL     string         `env:"SNOOZE_API_URL"`
	DatabasePath   string         `env:"SNOOZE_DB_PATH"`
	RequestTimeout *time.Duration `env:"SNOOZE_REQUEST_TIMEOUT"`
	LogLevel       string         `env:"SNOOZE_LOG_LEVEL"`
	LogPretty      *bool          `env:"SNOOZE_LOG_PRETTY"`
}

// parseEnv overlays cfg with values from SNOOZE_* environment variables.
func parseEnv(ctx context.Context, cfg *Config) error {
	var ec envConfig
	if err := envconfig.Process(ctx, &ec); err != nil {
		return err
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogPretty != nil {
		cfg.LogPretty = *ec.LogPretty
	}
	return nil
}
