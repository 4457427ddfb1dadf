package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the test while preserving their previous values.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, os.Getenv(key))
		os.Unsetenv(key)
	}
}

// TestLoadDefaults tests the local single-user defaults.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t, "SERVER_HOST", "SERVER_PORT", "DATA_FILE", "FRONTEND_ORIGIN")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, 8000, cfg.ServerPort)
	assert.Equal(t, "activity.json", cfg.DataFile)
	assert.Empty(t, cfg.FrontendOrigin)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
}

// TestLoadFromEnvironment tests that set variables override the defaults.
func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("DATA_FILE", "/var/lib/focusmate/activity.json")
	t.Setenv("FRONTEND_ORIGIN", "https://focusmate.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, 9100, cfg.ServerPort)
	assert.Equal(t, "/var/lib/focusmate/activity.json", cfg.DataFile)
	assert.Equal(t, "https://focusmate.example.com", cfg.FrontendOrigin)
	assert.Equal(t, "0.0.0.0:9100", cfg.Addr())
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
