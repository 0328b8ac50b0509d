package appstate

import (
	"sync"

	"github.com/carlfranklin/AppStateAuto/constants"
)

// Tracker is the pull-side alternative to change events. It keeps its own
// copy of the persistable fields, seeded when the tracker is created, and
// compares that copy against the live state on every poll. At most one
// changed field is reported per poll, message first; callers poll until no
// change is reported to drain a multi-field update.
type Tracker struct {
	mtx     sync.Mutex
	message string
	count   int
}

func NewTracker(state Service) *Tracker {
	snapshot := state.Snapshot()
	return &Tracker{
		message: snapshot.Message,
		count:   snapshot.Count,
	}
}

// Poll returns the first field whose live value differs from the tracker's
// copy, updating the copy for that field only.
func (t *Tracker) Poll(state Service) (string, interface{}, bool) {
	snapshot := state.Snapshot()

	t.mtx.Lock()
	defer t.mtx.Unlock()

	if snapshot.Message != t.message {
		t.message = snapshot.Message
		return constants.STATE_PROPERTY_MESSAGE, snapshot.Message, true
	}
	if snapshot.Count != t.count {
		t.count = snapshot.Count
		return constants.STATE_PROPERTY_COUNT, snapshot.Count, true
	}
	return "", nil, false
}

// TrackerRegistry hands out one tracker per client session.
type TrackerRegistry struct {
	mtx      sync.Mutex
	trackers map[string]*Tracker
}

func NewTrackerRegistry() *TrackerRegistry {
	return &TrackerRegistry{
		trackers: map[string]*Tracker{},
	}
}

// GetOrCreate returns the session's tracker, seeding a new one from the
// current state on first use.
func (r *TrackerRegistry) GetOrCreate(sessionId string, state Service) *Tracker {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	tracker, ok := r.trackers[sessionId]
	if !ok {
		tracker = NewTracker(state)
		r.trackers[sessionId] = tracker
	}
	return tracker
}

func (r *TrackerRegistry) Remove(sessionId string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.trackers, sessionId)
}
