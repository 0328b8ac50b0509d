package api

import (
	"context"
	"time"
)

type API interface {
	GetInfo(ctx context.Context) (*InfoResponse, error)
	GetState() *StateResponse
	SetMessage(setMessageRequest *SetMessageRequest) *StateResponse
	SetCount(setCountRequest *SetCountRequest) *StateResponse
	IncrementCount() *StateResponse
	RestoreState() *RestoreStateResponse
	SaveState() (*SaveStateResponse, error)
	ListStateChanges(limit uint64, offset uint64, filters ListStateChangesFilters) (*ListStateChangesResponse, error)
	CreateClient(createClientRequest *CreateClientRequest) (*CreateClientResponse, error)
	ListClients() (*ListClientsResponse, error)
	GetClient(sessionId string) (*Client, error)
	DeleteClient(sessionId string) error
	PollClientState(sessionId string) (*PollClientStateResponse, error)
	GetLogOutput(ctx context.Context, logType string, getLogRequest *GetLogOutputRequest) (*GetLogOutputResponse, error)
	Health(ctx context.Context) (*HealthResponse, error)
	SendEvent(event string, properties interface{})
}

type InfoResponse struct {
	Version            string `json:"version"`
	SessionId          string `json:"sessionId"`
	StateLoaded        bool   `json:"stateLoaded"`
	AutoSave           bool   `json:"autoSave"`
	StaleWindowSeconds int    `json:"staleWindowSeconds"`
	SaveDebounceMs     int    `json:"saveDebounceMs"`
	WorkDir            string `json:"workDir"`
	Unlocked           bool   `json:"unlocked"`
}

// StateResponse is the wire form of the shared state. LastSaveTime is
// nil until the state has been saved at least once in this session.
type StateResponse struct {
	Message      string     `json:"message"`
	Count        int        `json:"count"`
	LastSaveTime *time.Time `json:"lastSaveTime,omitempty"`
}

type SetMessageRequest struct {
	Message string `json:"message"`
}

type SetCountRequest struct {
	Count int `json:"count"`
}

type RestoreStateResponse struct {
	Restored bool           `json:"restored"`
	State    *StateResponse `json:"state"`
}

type SaveStateResponse struct {
	Saved   bool       `json:"saved"`
	SavedAt *time.Time `json:"savedAt,omitempty"`
}

type StateChange struct {
	ID        uint        `json:"id"`
	SessionId string      `json:"sessionId"`
	Property  string      `json:"property"`
	Value     interface{} `json:"value"`
	CreatedAt time.Time   `json:"createdAt"`
}

type ListStateChangesFilters struct {
	Property  string
	SessionId string
}

type ListStateChangesResponse struct {
	Changes    []StateChange `json:"changes"`
	TotalCount uint64        `json:"totalCount"`
}

type CreateClientRequest struct {
	Name     string                 `json:"name"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Token is minted by the HTTP layer after the client row exists; it is
// empty when clients are created outside the HTTP transport.
type CreateClientResponse struct {
	ID        uint           `json:"id"`
	SessionId string         `json:"sessionId"`
	Name      string         `json:"name"`
	Token     string         `json:"token,omitempty"`
	State     *StateResponse `json:"state"`
}

type Client struct {
	ID         uint                   `json:"id"`
	SessionId  string                 `json:"sessionId"`
	Name       string                 `json:"name"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
	LastSeenAt *time.Time             `json:"lastSeenAt,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

type ListClientsResponse struct {
	Clients []Client `json:"clients"`
}

type PollClientStateResponse struct {
	Changed  bool        `json:"changed"`
	Property string      `json:"property,omitempty"`
	Value    interface{} `json:"value,omitempty"`
}

const (
	LogTypeApp = "app"
)

type GetLogOutputRequest struct {
	MaxLen int `query:"maxLen"`
}

type GetLogOutputResponse struct {
	Log string `json:"logs"`
}

type SendEventRequest struct {
	Event      string      `json:"event"`
	Properties interface{} `json:"properties,omitempty"`
}

type HealthAlarmKind string

const (
	HealthAlarmKindDatabaseUnreachable HealthAlarmKind = "database_unreachable"
	HealthAlarmKindStateNotLoaded      HealthAlarmKind = "state_not_loaded"
)

type HealthAlarm struct {
	Kind       HealthAlarmKind `json:"kind"`
	RawDetails any             `json:"rawDetails,omitempty"`
}

func NewHealthAlarm(kind HealthAlarmKind, rawDetails any) HealthAlarm {
	return HealthAlarm{
		Kind:       kind,
		RawDetails: rawDetails,
	}
}

type HealthResponse struct {
	Alarms []HealthAlarm `json:"alarms,omitempty"`
}
