package config

import "strings"

type AppConfig struct {
	Workdir                 string `envconfig:"WORK_DIR"`
	Port                    string `envconfig:"PORT" default:"8100"`
	DatabaseUri             string `envconfig:"DATABASE_URI" default:"appstate.db"`
	LogLevel                string `envconfig:"LOG_LEVEL" default:"4"`
	LogToFile               bool   `envconfig:"LOG_TO_FILE" default:"true"`
	LogDBQueries            bool   `envconfig:"LOG_DB_QUERIES" default:"false"`
	BaseUrl                 string `envconfig:"BASE_URL"`
	FrontendUrl             string `envconfig:"FRONTEND_URL"`
	JWTSecret               string `envconfig:"JWT_SECRET"`
	StateStaleWindowSeconds int    `envconfig:"STATE_STALE_WINDOW_SECONDS" default:"30"`
	StateSaveDebounceMs     int    `envconfig:"STATE_SAVE_DEBOUNCE_MS" default:"250"`
	AutoSave                bool   `envconfig:"AUTO_SAVE" default:"true"`
	GoProfilerAddr          string `envconfig:"GO_PROFILER_ADDR"`
}

func (c *AppConfig) GetBaseFrontendUrl() string {
	if c.FrontendUrl != "" {
		return strings.TrimSuffix(c.FrontendUrl, "/")
	}
	return strings.TrimSuffix(c.BaseUrl, "/")
}
