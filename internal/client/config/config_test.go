package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Equal(t, "nutritrack.db", c.DatabasePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("NUTRITRACK_CLIENT_SERVER_URL", "https://api.example")
	t.Setenv("NUTRITRACK_CLIENT_REQUEST_TIMEOUT", "3s")

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, "https://api.example", c.ServerURL)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.Equal(t, "nutritrack.db", c.DatabasePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("NUTRITRACK_CLIENT_REQUEST_TIMEOUT", "forever")

	var c Config
	assert.Error(t, parseEnv(&c))
}
