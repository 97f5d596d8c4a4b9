package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds library-wide settings.
type Config struct {
	Debug   DebugConfig
	Logging LogConfig
}

// DebugConfig holds debug instrumentation settings.
type DebugConfig struct {
	// Checks enables borrowed-view retention checks. A view accessed after
	// its delivering callback has returned panics instead of reading
	// possibly-reused storage.
	Checks bool `envconfig:"STREAMS_DEBUG" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"STREAMS_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"STREAMS_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Debug: DebugConfig{
			Checks: false,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
