package persist

// KVStore is the storage backend for serialized application state.
// A missing key reads as (nil, nil) rather than an error.
type KVStore interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}
