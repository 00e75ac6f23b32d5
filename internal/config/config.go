// Package config loads the keyfmt CLI's environment configuration. Flags
// cover per-invocation parameters; the environment covers ambient defaults.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds environment-driven defaults for the CLI.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"KEYFMT_LOG_LEVEL" envDefault:"info"`

	// Jobs bounds concurrent render workers during batch formatting.
	Jobs int `env:"KEYFMT_JOBS" envDefault:"4"`

	// AssumeYes skips interactive confirmation before renames.
	AssumeYes bool `env:"KEYFMT_ASSUME_YES" envDefault:"false"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("KEYFMT_JOBS must be at least 1, got %d", c.Jobs)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("KEYFMT_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}
