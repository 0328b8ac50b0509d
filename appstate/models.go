package appstate

import (
	"time"

	"github.com/carlfranklin/AppStateAuto/persist"
)

// Renderer is the hosting UI layer's re-render hook. The container calls
// RequestRender after every observable mutation.
type Renderer interface {
	RequestRender()
}

// Service is the shared application state container. Every component holds
// the same instance, handed down by explicit injection.
type Service interface {
	GetMessage() string
	SetMessage(message string)
	GetCount() int
	SetCount(count int)
	IncrementCount() int
	GetLastSaveTime() time.Time
	SetLastSaveTime(t time.Time)

	Snapshot() *persist.Snapshot
	Restore(snapshot *persist.Snapshot)
	SetRenderer(renderer Renderer)
}
