package constants

import "time"

// shared constants used by multiple packages

const (
	STATE_PROPERTY_MESSAGE = "message"
	STATE_PROPERTY_COUNT   = "count"
)

// defaults for a freshly initialized state container
const (
	DEFAULT_MESSAGE = "Initial Message"
	DEFAULT_COUNT   = 0
)

// internal event names
const (
	APP_STARTED_EVENT       = "app_started"
	APP_STOPPED_EVENT       = "app_stopped"
	RENDER_EVENT            = "state.render"
	CLIENT_REGISTERED_EVENT = "state.client_registered"

	STATE_PROPERTY_CHANGED_EVENT = "state.property_changed"
	STATE_RESTORED_EVENT         = "state.restored"
	STATE_SAVED_EVENT            = "state.saved"
)

// persistence
const (
	// single fixed key the whole snapshot is written under
	STATE_STORAGE_KEY = "app_state"

	// bumped on breaking snapshot layout changes; loads refuse a
	// different major version
	SNAPSHOT_SCHEMA_VERSION = "1.0.0"

	DEFAULT_STALE_WINDOW  = 30 * time.Second
	DEFAULT_SAVE_DEBOUNCE = 250 * time.Millisecond
)

// state change history retention, see service.removeExcessStateChanges
const (
	MAX_STATE_CHANGES = 1000
)

const (
	SESSION_TOKEN_TTL = 30 * 24 * time.Hour
)
