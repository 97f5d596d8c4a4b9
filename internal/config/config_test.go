package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.False(t, cfg.Debug.Checks)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadOrDefault(t *testing.T) {
	// Should return default when no env vars set
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("STREAMS_DEBUG", "true")
	t.Setenv("STREAMS_LOG_LEVEL", "debug")
	t.Setenv("STREAMS_LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug.Checks)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("STREAMS_DEBUG", "not-a-bool")

	_, err := Load()
	assert.Error(t, err)
}
