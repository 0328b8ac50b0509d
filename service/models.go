package service

import (
	"gorm.io/gorm"

	"github.com/carlfranklin/AppStateAuto/appstate"
	"github.com/carlfranklin/AppStateAuto/config"
	"github.com/carlfranklin/AppStateAuto/events"
)

type Service interface {
	RestoreState() bool
	SaveState() error
	StateLoaded() bool
	Shutdown()

	// TODO: remove getters (currently used by http / wails services)
	GetAppState() appstate.Service
	GetTrackers() *appstate.TrackerRegistry
	GetEventPublisher() events.EventPublisher
	GetDB() *gorm.DB
	GetConfig() config.Config
	GetSessionId() string
	GetJWTSecret() string
}
