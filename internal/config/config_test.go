package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 5, cfg.RolloverCheckMinutes)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DATA_DIR", "/var/lib/inkgacha")
	t.Setenv("ROLLOVER_CHECK_MINUTES", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 1, cfg.RolloverCheckMinutes)
	assert.Equal(t, filepath.Join("/var/lib/inkgacha", "inkgacha.db"), cfg.DatabasePath())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero rollover interval", func(t *testing.T) {
		t.Setenv("ROLLOVER_CHECK_MINUTES", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
