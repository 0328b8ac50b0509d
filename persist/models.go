package persist

import "time"

// Snapshot is the serialized form of the application state, written as one
// JSON blob under a single storage key. LastSaveTime is stamped on save and
// drives the staleness check on load; it is never copied back into the live
// state. SchemaVersion gates loads across incompatible releases.
type Snapshot struct {
	SchemaVersion string    `json:"schemaVersion"`
	Message       string    `json:"message"`
	Count         int       `json:"count"`
	LastSaveTime  time.Time `json:"lastSaveTime"`
}
