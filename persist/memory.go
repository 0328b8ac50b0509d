package persist

import "sync"

// MemoryKVStore keeps values in process memory. Snapshots written here do
// not survive the process; it exists for tests and ephemeral runs.
type MemoryKVStore struct {
	mtx  sync.RWMutex
	data map[string][]byte
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{
		data: map[string][]byte{},
	}
}

func (s *MemoryKVStore) Read(key string) ([]byte, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryKVStore) Write(key string, data []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	out := make([]byte, len(data))
	copy(out, data)
	s.data[key] = out
	return nil
}
