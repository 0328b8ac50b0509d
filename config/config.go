package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/carlfranklin/AppStateAuto/constants"
)

type Config interface {
	GetEnv() *AppConfig
	GetWorkDir() string
	GetStaleWindow() time.Duration
	GetSaveDebounce() time.Duration
	GetBaseFrontendUrl() string
}

type config struct {
	Env *AppConfig
}

func NewConfig(env *AppConfig) *config {
	return &config{
		Env: env,
	}
}

func (cfg *config) GetEnv() *AppConfig {
	return cfg.Env
}

// GetWorkDir returns the configured working directory, falling back to a
// per-user XDG data directory when WORK_DIR is unset.
func (cfg *config) GetWorkDir() string {
	if cfg.Env.Workdir != "" {
		return cfg.Env.Workdir
	}
	return filepath.Join(xdg.DataHome, "appstate")
}

func (cfg *config) GetStaleWindow() time.Duration {
	if cfg.Env.StateStaleWindowSeconds <= 0 {
		return constants.DEFAULT_STALE_WINDOW
	}
	return time.Duration(cfg.Env.StateStaleWindowSeconds) * time.Second
}

func (cfg *config) GetSaveDebounce() time.Duration {
	if cfg.Env.StateSaveDebounceMs <= 0 {
		return constants.DEFAULT_SAVE_DEBOUNCE
	}
	return time.Duration(cfg.Env.StateSaveDebounceMs) * time.Millisecond
}

func (cfg *config) GetBaseFrontendUrl() string {
	return cfg.Env.GetBaseFrontendUrl()
}
