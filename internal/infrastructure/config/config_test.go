package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "printy", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, "KES", cfg.Engine.DefaultCurrency)
	assert.Equal(t, 3.0, cfg.Engine.DefaultBleedMM)
	assert.Equal(t, 5.0, cfg.Engine.DefaultGutterMM)
	assert.Equal(t, 10.0, cfg.Engine.DefaultMarginMM)
	assert.Equal(t, 4, cfg.Engine.SignatureMultiple)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PRINTY_ENGINE_DEFAULT_CURRENCY", "USD")
	t.Setenv("PRINTY_SERVER_PORT", "9090")
	t.Setenv("PRINTY_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Engine.DefaultCurrency)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("PRINTY_TEST_STRING", "value")
	t.Setenv("PRINTY_TEST_INT", "42")
	t.Setenv("PRINTY_TEST_BOOL", "true")

	assert.Equal(t, "value", GetEnv("PRINTY_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PRINTY_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, GetEnvInt("PRINTY_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("PRINTY_TEST_MISSING", 7))
	assert.True(t, GetEnvBool("PRINTY_TEST_BOOL", false))
	assert.False(t, GetEnvBool("PRINTY_TEST_MISSING", false))
}
