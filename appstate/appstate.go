package appstate

import (
	"sync"
	"time"

	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/events"
	"github.com/carlfranklin/AppStateAuto/persist"
)

type appState struct {
	mtx            sync.RWMutex
	message        string
	count          int
	lastSaveTime   time.Time
	renderer       Renderer
	eventPublisher events.EventPublisher
}

type noopRenderer struct{}

func (noopRenderer) RequestRender() {}

// NewAppState creates the shared state container. The default message is
// applied through the regular setter, so subscribers already registered on
// the publisher observe one notification at startup.
func NewAppState(eventPublisher events.EventPublisher) *appState {
	state := &appState{
		renderer:       noopRenderer{},
		eventPublisher: eventPublisher,
	}
	state.SetMessage(constants.DEFAULT_MESSAGE)
	return state
}

func (s *appState) GetMessage() string {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.message
}

// SetMessage stores the value unconditionally; setting the current value
// again still triggers a render and a notification.
func (s *appState) SetMessage(message string) {
	s.mtx.Lock()
	s.message = message
	s.mtx.Unlock()

	s.notifyChanged(constants.STATE_PROPERTY_MESSAGE, message)
}

func (s *appState) GetCount() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.count
}

func (s *appState) SetCount(count int) {
	s.mtx.Lock()
	s.count = count
	s.mtx.Unlock()

	s.notifyChanged(constants.STATE_PROPERTY_COUNT, count)
}

func (s *appState) IncrementCount() int {
	s.mtx.Lock()
	s.count++
	count := s.count
	s.mtx.Unlock()

	s.notifyChanged(constants.STATE_PROPERTY_COUNT, count)
	return count
}

func (s *appState) GetLastSaveTime() time.Time {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.lastSaveTime
}

// SetLastSaveTime is bookkeeping for the persistence layer. It does not
// render or notify.
func (s *appState) SetLastSaveTime(t time.Time) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.lastSaveTime = t
}

// Snapshot returns a copy of the persistable fields. The field list is
// deliberately explicit; a new property must be added here to be persisted.
func (s *appState) Snapshot() *persist.Snapshot {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return &persist.Snapshot{
		Message:      s.message,
		Count:        s.count,
		LastSaveTime: s.lastSaveTime,
	}
}

// Restore copies message and count from the snapshot; the save timestamp is
// not restored. A single restored event is published instead of one
// property_changed per field.
func (s *appState) Restore(snapshot *persist.Snapshot) {
	s.mtx.Lock()
	s.message = snapshot.Message
	s.count = snapshot.Count
	s.mtx.Unlock()

	s.getRenderer().RequestRender()
	s.eventPublisher.PublishSync(&events.Event{
		Event: constants.STATE_RESTORED_EVENT,
		Properties: &events.StateRestoredEventProperties{
			Message: snapshot.Message,
			Count:   snapshot.Count,
		},
	})
}

func (s *appState) SetRenderer(renderer Renderer) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if renderer == nil {
		renderer = noopRenderer{}
	}
	s.renderer = renderer
}

func (s *appState) getRenderer() Renderer {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.renderer
}

func (s *appState) notifyChanged(property string, value interface{}) {
	s.getRenderer().RequestRender()
	s.eventPublisher.PublishSync(&events.Event{
		Event: constants.STATE_PROPERTY_CHANGED_EVENT,
		Properties: &events.PropertyChangedEventProperties{
			Property: property,
			Value:    value,
		},
	})
}
