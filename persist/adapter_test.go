package persist

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/logger"
)

type fakeState struct {
	message      string
	count        int
	lastSaveTime time.Time
	restored     []*Snapshot
}

func (s *fakeState) Snapshot() *Snapshot {
	return &Snapshot{
		Message:      s.message,
		Count:        s.count,
		LastSaveTime: s.lastSaveTime,
	}
}

func (s *fakeState) Restore(snapshot *Snapshot) {
	s.message = snapshot.Message
	s.count = snapshot.Count
	s.restored = append(s.restored, snapshot)
}

func (s *fakeState) SetLastSaveTime(t time.Time) {
	s.lastSaveTime = t
}

type countingKVStore struct {
	KVStore
	writes int
}

func (s *countingKVStore) Write(key string, data []byte) error {
	s.writes++
	return s.KVStore.Write(key, data)
}

type failingKVStore struct{}

func (failingKVStore) Read(key string) ([]byte, error) {
	return nil, errors.New("storage offline")
}

func (failingKVStore) Write(key string, data []byte) error {
	return errors.New("storage offline")
}

func writeSnapshot(t *testing.T, store KVStore, snapshot *Snapshot) {
	t.Helper()
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)
	require.NoError(t, store.Write(constants.STATE_STORAGE_KEY, data))
}

func TestSaveBeforeLoadDoesNotWrite(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	store := &countingKVStore{KVStore: NewMemoryKVStore()}
	state := &fakeState{}
	adapter := NewAdapter(store, state, 30*time.Second)

	saved, err := adapter.Save()
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, 0, store.writes)
	assert.True(t, state.lastSaveTime.IsZero())

	_, err = adapter.Load()
	require.NoError(t, err)

	saved, err = adapter.Save()
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, 1, store.writes)
}

func TestLoadRestoresFreshSnapshot(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	now := time.Now()
	store := NewMemoryKVStore()
	writeSnapshot(t, store, &Snapshot{
		SchemaVersion: constants.SNAPSHOT_SCHEMA_VERSION,
		Message:       "stored message",
		Count:         7,
		LastSaveTime:  now.Add(-29 * time.Second),
	})

	state := &fakeState{}
	adapter := NewAdapter(store, state, 30*time.Second)
	adapter.now = func() time.Time { return now }

	restored, err := adapter.Load()
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, "stored message", state.message)
	assert.Equal(t, 7, state.count)
	// the save timestamp itself is never restored
	assert.True(t, state.lastSaveTime.IsZero())
}

func TestLoadDiscardsStaleSnapshot(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	now := time.Now()
	store := NewMemoryKVStore()
	writeSnapshot(t, store, &Snapshot{
		SchemaVersion: constants.SNAPSHOT_SCHEMA_VERSION,
		Message:       "stored message",
		Count:         7,
		LastSaveTime:  now.Add(-31 * time.Second),
	})

	state := &fakeState{message: "default", count: 0}
	adapter := NewAdapter(store, state, 30*time.Second)
	adapter.now = func() time.Time { return now }

	restored, err := adapter.Load()
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Equal(t, "default", state.message)
	assert.Equal(t, 0, state.count)
	assert.True(t, adapter.Loaded())
}

func TestLoadKeepsSnapshotAtExactStaleWindow(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	now := time.Now()
	store := NewMemoryKVStore()
	writeSnapshot(t, store, &Snapshot{
		SchemaVersion: constants.SNAPSHOT_SCHEMA_VERSION,
		Message:       "on the line",
		LastSaveTime:  now.Add(-30 * time.Second),
	})

	state := &fakeState{}
	adapter := NewAdapter(store, state, 30*time.Second)
	adapter.now = func() time.Time { return now }

	restored, err := adapter.Load()
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, "on the line", state.message)
}

func TestLoadRunsOnlyOnce(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	now := time.Now()
	store := NewMemoryKVStore()
	writeSnapshot(t, store, &Snapshot{
		SchemaVersion: constants.SNAPSHOT_SCHEMA_VERSION,
		Message:       "stored message",
		LastSaveTime:  now,
	})

	state := &fakeState{}
	adapter := NewAdapter(store, state, 30*time.Second)
	adapter.now = func() time.Time { return now }

	restored, err := adapter.Load()
	require.NoError(t, err)
	assert.True(t, restored)

	restored, err = adapter.Load()
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Len(t, state.restored, 1)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	now := time.Now()
	store := NewMemoryKVStore()

	state := &fakeState{message: "hello", count: 42}
	adapter := NewAdapter(store, state, 30*time.Second)
	adapter.now = func() time.Time { return now }

	_, err := adapter.Load()
	require.NoError(t, err)
	saved, err := adapter.Save()
	require.NoError(t, err)
	require.True(t, saved)
	assert.Equal(t, now, state.lastSaveTime)

	freshState := &fakeState{}
	freshAdapter := NewAdapter(store, freshState, 30*time.Second)
	freshAdapter.now = func() time.Time { return now }

	restored, err := freshAdapter.Load()
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, "hello", freshState.message)
	assert.Equal(t, 42, freshState.count)
	assert.True(t, freshState.lastSaveTime.IsZero())
}

func TestLoadReturnsErrorForCorruptData(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	store := NewMemoryKVStore()
	require.NoError(t, store.Write(constants.STATE_STORAGE_KEY, []byte("{not json")))

	state := &fakeState{message: "default"}
	adapter := NewAdapter(store, state, 30*time.Second)

	restored, err := adapter.Load()
	require.Error(t, err)
	assert.False(t, restored)
	assert.Equal(t, "default", state.message)

	// a failed load still counts as loaded, so later saves go through
	saved, err := adapter.Save()
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestLoadDiscardsIncompatibleSchemaVersion(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	now := time.Now()
	store := NewMemoryKVStore()
	writeSnapshot(t, store, &Snapshot{
		SchemaVersion: "2.0.0",
		Message:       "from the future",
		LastSaveTime:  now,
	})

	state := &fakeState{}
	adapter := NewAdapter(store, state, 30*time.Second)
	adapter.now = func() time.Time { return now }

	restored, err := adapter.Load()
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Empty(t, state.message)
}

func TestLoadAcceptsUnversionedSnapshot(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	now := time.Now()
	store := NewMemoryKVStore()
	writeSnapshot(t, store, &Snapshot{
		Message:      "legacy",
		Count:        3,
		LastSaveTime: now,
	})

	state := &fakeState{}
	adapter := NewAdapter(store, state, 30*time.Second)
	adapter.now = func() time.Time { return now }

	restored, err := adapter.Load()
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, "legacy", state.message)
	assert.Equal(t, 3, state.count)
}

func TestLoadReturnsErrorWhenStorageFails(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	state := &fakeState{}
	adapter := NewAdapter(failingKVStore{}, state, 30*time.Second)

	restored, err := adapter.Load()
	require.Error(t, err)
	assert.False(t, restored)
	assert.True(t, adapter.Loaded())
}

func TestSaveStampsSchemaVersionAndTime(t *testing.T) {
	logger.Init(strconv.Itoa(4))
	now := time.Now()
	store := NewMemoryKVStore()

	state := &fakeState{message: "hello"}
	adapter := NewAdapter(store, state, 30*time.Second)
	adapter.now = func() time.Time { return now }

	_, err := adapter.Load()
	require.NoError(t, err)
	saved, err := adapter.Save()
	require.NoError(t, err)
	require.True(t, saved)

	data, err := store.Read(constants.STATE_STORAGE_KEY)
	require.NoError(t, err)
	stored := &Snapshot{}
	require.NoError(t, json.Unmarshal(data, stored))
	assert.Equal(t, constants.SNAPSHOT_SCHEMA_VERSION, stored.SchemaVersion)
	assert.Equal(t, "hello", stored.Message)
	assert.True(t, stored.LastSaveTime.Equal(now))
}
