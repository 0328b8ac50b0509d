package persist

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/logger"
)

// StateSource provides the live values the adapter persists and restores.
type StateSource interface {
	Snapshot() *Snapshot
	Restore(snapshot *Snapshot)
	SetLastSaveTime(t time.Time)
}

// Adapter moves application state between the live container and a KVStore.
// It has exactly two states: it starts unloaded and becomes loaded after the
// first Load call, whatever the outcome. Save is a no-op while unloaded so a
// starting session cannot overwrite the previous session's snapshot with
// default values.
type Adapter struct {
	kvStore       KVStore
	state         StateSource
	staleWindow   time.Duration
	schemaVersion *semver.Version

	mtx    sync.Mutex
	loaded bool

	// swapped out in tests
	now func() time.Time
}

func NewAdapter(kvStore KVStore, state StateSource, staleWindow time.Duration) *Adapter {
	if staleWindow <= 0 {
		staleWindow = constants.DEFAULT_STALE_WINDOW
	}
	return &Adapter{
		kvStore:       kvStore,
		state:         state,
		staleWindow:   staleWindow,
		schemaVersion: semver.MustParse(constants.SNAPSHOT_SCHEMA_VERSION),
		now:           time.Now,
	}
}

func (a *Adapter) Loaded() bool {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.loaded
}

// Load reads the stored snapshot and, if it is usable, restores it into the
// live state. It returns true only when a snapshot was actually applied.
// A snapshot older than the stale window is discarded, not treated as an
// error. Load runs at most once; later calls return (false, nil).
func (a *Adapter) Load() (bool, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	if a.loaded {
		logger.Logger.Debug().Msg("State already loaded, skipping")
		return false, nil
	}
	defer func() {
		a.loaded = true
	}()

	data, err := a.kvStore.Read(constants.STATE_STORAGE_KEY)
	if err != nil {
		return false, fmt.Errorf("failed to read stored state: %w", err)
	}
	if len(data) == 0 {
		logger.Logger.Debug().Msg("No stored state found")
		return false, nil
	}

	snapshot := &Snapshot{}
	err = json.Unmarshal(data, snapshot)
	if err != nil {
		return false, fmt.Errorf("failed to decode stored state: %w", err)
	}

	// Snapshots written before schema versioning carry no version and are
	// accepted as-is.
	if snapshot.SchemaVersion != "" {
		storedVersion, err := semver.NewVersion(snapshot.SchemaVersion)
		if err != nil {
			return false, fmt.Errorf("invalid stored schema version %q: %w", snapshot.SchemaVersion, err)
		}
		if storedVersion.Major() != a.schemaVersion.Major() {
			logger.Logger.Warn().
				Str("stored_version", snapshot.SchemaVersion).
				Str("current_version", a.schemaVersion.String()).
				Msg("Discarding stored state with incompatible schema version")
			return false, nil
		}
	}

	age := a.now().Sub(snapshot.LastSaveTime)
	if age > a.staleWindow {
		logger.Logger.Info().
			Dur("age", age).
			Dur("stale_window", a.staleWindow).
			Msg("Discarding stale stored state")
		return false, nil
	}

	a.state.Restore(snapshot)
	return true, nil
}

// Save stamps the save time on the live state and writes the full snapshot
// to the storage key. It returns true only when a write happened.
func (a *Adapter) Save() (bool, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	if !a.loaded {
		logger.Logger.Debug().Msg("Skipping state save before initial load")
		return false, nil
	}

	stamp := a.now()
	a.state.SetLastSaveTime(stamp)

	snapshot := a.state.Snapshot()
	snapshot.SchemaVersion = a.schemaVersion.String()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return false, fmt.Errorf("failed to encode state: %w", err)
	}

	err = a.kvStore.Write(constants.STATE_STORAGE_KEY, data)
	if err != nil {
		return false, fmt.Errorf("failed to write state: %w", err)
	}
	return true, nil
}
