package config

import (
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDefaults(t *testing.T) {
	appConfig := &AppConfig{}
	err := envconfig.Process("", appConfig)
	require.NoError(t, err)

	assert.Equal(t, "appstate.db", appConfig.DatabaseUri)
	assert.Equal(t, "4", appConfig.LogLevel)
	assert.Equal(t, 30, appConfig.StateStaleWindowSeconds)
	assert.Equal(t, 250, appConfig.StateSaveDebounceMs)
	assert.True(t, appConfig.AutoSave)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STATE_STALE_WINDOW_SECONDS", "60")
	t.Setenv("STATE_SAVE_DEBOUNCE_MS", "10")
	t.Setenv("AUTO_SAVE", "false")

	appConfig := &AppConfig{}
	err := envconfig.Process("", appConfig)
	require.NoError(t, err)

	cfg := NewConfig(appConfig)
	assert.Equal(t, 60*time.Second, cfg.GetStaleWindow())
	assert.Equal(t, 10*time.Millisecond, cfg.GetSaveDebounce())
	assert.False(t, cfg.GetEnv().AutoSave)
}

func TestStaleWindowFallsBackWhenNonPositive(t *testing.T) {
	cfg := NewConfig(&AppConfig{StateStaleWindowSeconds: 0})
	assert.Equal(t, 30*time.Second, cfg.GetStaleWindow())

	cfg = NewConfig(&AppConfig{StateStaleWindowSeconds: -5})
	assert.Equal(t, 30*time.Second, cfg.GetStaleWindow())
}

func TestGetBaseFrontendUrl(t *testing.T) {
	cfg := NewConfig(&AppConfig{BaseUrl: "http://localhost:8100/"})
	assert.Equal(t, "http://localhost:8100", cfg.GetBaseFrontendUrl())

	cfg = NewConfig(&AppConfig{BaseUrl: "http://localhost:8100", FrontendUrl: "http://localhost:5173/"})
	assert.Equal(t, "http://localhost:5173", cfg.GetBaseFrontendUrl())
}

func TestWorkDirPrefersConfiguredValue(t *testing.T) {
	cfg := NewConfig(&AppConfig{Workdir: t.TempDir()})
	assert.Equal(t, cfg.GetEnv().Workdir, cfg.GetWorkDir())

	cfg = NewConfig(&AppConfig{})
	assert.NotEmpty(t, cfg.GetWorkDir())
}
