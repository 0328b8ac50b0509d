package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/carlfranklin/AppStateAuto/config"
	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/db"
	"github.com/carlfranklin/AppStateAuto/events"
	"github.com/carlfranklin/AppStateAuto/logger"
	"github.com/carlfranklin/AppStateAuto/pkg/version"
	"github.com/carlfranklin/AppStateAuto/service"
	"github.com/carlfranklin/AppStateAuto/utils"
)

type api struct {
	db             *gorm.DB
	cfg            config.Config
	svc            service.Service
	eventPublisher events.EventPublisher
}

func NewAPI(svc service.Service, gormDB *gorm.DB, config config.Config, eventPublisher events.EventPublisher) *api {
	return &api{
		db:             gormDB,
		cfg:            config,
		svc:            svc,
		eventPublisher: eventPublisher,
	}
}

func (api *api) GetInfo(ctx context.Context) (*InfoResponse, error) {
	info := InfoResponse{}
	info.Version = version.Tag
	info.SessionId = api.svc.GetSessionId()
	info.StateLoaded = api.svc.StateLoaded()
	info.AutoSave = api.cfg.GetEnv().AutoSave
	info.StaleWindowSeconds = int(api.cfg.GetStaleWindow() / time.Second)
	info.SaveDebounceMs = int(api.cfg.GetSaveDebounce() / time.Millisecond)
	info.WorkDir = api.cfg.GetWorkDir()

	return &info, nil
}

func (api *api) GetState() *StateResponse {
	return api.toStateResponse()
}

func (api *api) SetMessage(setMessageRequest *SetMessageRequest) *StateResponse {
	api.svc.GetAppState().SetMessage(setMessageRequest.Message)
	return api.toStateResponse()
}

func (api *api) SetCount(setCountRequest *SetCountRequest) *StateResponse {
	api.svc.GetAppState().SetCount(setCountRequest.Count)
	return api.toStateResponse()
}

func (api *api) IncrementCount() *StateResponse {
	api.svc.GetAppState().IncrementCount()
	return api.toStateResponse()
}

func (api *api) RestoreState() *RestoreStateResponse {
	restored := api.svc.RestoreState()

	return &RestoreStateResponse{
		Restored: restored,
		State:    api.toStateResponse(),
	}
}

func (api *api) SaveState() (*SaveStateResponse, error) {
	err := api.svc.SaveState()
	if err != nil {
		return nil, err
	}

	// Saves are skipped until the stored state has been loaded, so a
	// flushed save only reached storage when the state is loaded.
	response := &SaveStateResponse{
		Saved: api.svc.StateLoaded(),
	}
	if response.Saved {
		if lastSaveTime := api.svc.GetAppState().GetLastSaveTime(); !lastSaveTime.IsZero() {
			response.SavedAt = &lastSaveTime
		}
	}

	return response, nil
}

func (api *api) ListStateChanges(limit uint64, offset uint64, filters ListStateChangesFilters) (*ListStateChangesResponse, error) {
	query := api.db

	if filters.Property != "" {
		query = query.Where("property = ?", filters.Property)
	}
	if filters.SessionId != "" {
		query = query.Where("session_id = ?", filters.SessionId)
	}

	if limit == 0 {
		limit = 100
	}
	var totalCount int64
	result := query.Model(&db.StateChange{}).Count(&totalCount)
	if result.Error != nil {
		logger.Logger.Error().Err(result.Error).Msg("Failed to count state changes")
		return nil, result.Error
	}

	dbChanges := []db.StateChange{}
	err := query.Order("id desc").Offset(int(offset)).Limit(int(limit)).Find(&dbChanges).Error
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list state changes")
		return nil, err
	}

	changes := []StateChange{}
	for _, dbChange := range dbChanges {
		var value interface{}
		if dbChange.Value != nil {
			if err := json.Unmarshal(dbChange.Value, &value); err != nil {
				logger.Logger.Error().Err(err).
					Uint("id", dbChange.ID).
					Msg("Failed to deserialize state change value")
			}
		}
		changes = append(changes, StateChange{
			ID:        dbChange.ID,
			SessionId: dbChange.SessionId,
			Property:  dbChange.Property,
			Value:     value,
			CreatedAt: dbChange.CreatedAt,
		})
	}

	return &ListStateChangesResponse{
		Changes:    changes,
		TotalCount: uint64(totalCount),
	}, nil
}

func (api *api) CreateClient(createClientRequest *CreateClientRequest) (*CreateClientResponse, error) {
	if createClientRequest.Name == "" {
		return nil, errors.New("name is required")
	}

	dbClient := db.Client{
		SessionId: uuid.NewString(),
		Name:      createClientRequest.Name,
	}

	if createClientRequest.Metadata != nil {
		metadataBytes, err := json.Marshal(createClientRequest.Metadata)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to serialize client metadata")
			return nil, err
		}
		dbClient.Metadata = datatypes.JSON(metadataBytes)
	}

	err := api.db.Create(&dbClient).Error
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to save client")
		return nil, err
	}

	// Seed the client's tracker now so its first poll only reports
	// changes made after registration.
	api.svc.GetTrackers().GetOrCreate(dbClient.SessionId, api.svc.GetAppState())

	api.eventPublisher.Publish(&events.Event{
		Event: constants.CLIENT_REGISTERED_EVENT,
		Properties: &events.ClientRegisteredEventProperties{
			SessionId: dbClient.SessionId,
			Name:      dbClient.Name,
		},
	})

	logger.Logger.Info().
		Str("session_id", dbClient.SessionId).
		Str("name", dbClient.Name).
		Msg("Registered new client")

	return &CreateClientResponse{
		ID:        dbClient.ID,
		SessionId: dbClient.SessionId,
		Name:      dbClient.Name,
		State:     api.toStateResponse(),
	}, nil
}

func (api *api) ListClients() (*ListClientsResponse, error) {
	dbClients := []db.Client{}
	err := api.db.Order("id desc").Find(&dbClients).Error
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list clients")
		return nil, err
	}

	clients := []Client{}
	for idx := range dbClients {
		clients = append(clients, *api.toApiClient(&dbClients[idx]))
	}

	return &ListClientsResponse{Clients: clients}, nil
}

func (api *api) GetClient(sessionId string) (*Client, error) {
	dbClient := db.Client{}
	err := api.db.First(&dbClient, "session_id = ?", sessionId).Error
	if err != nil {
		return nil, err
	}

	return api.toApiClient(&dbClient), nil
}

func (api *api) DeleteClient(sessionId string) error {
	dbClient := db.Client{}
	err := api.db.First(&dbClient, "session_id = ?", sessionId).Error
	if err != nil {
		return err
	}

	err = api.db.Delete(&dbClient).Error
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete client")
		return err
	}

	api.svc.GetTrackers().Remove(sessionId)

	logger.Logger.Info().
		Str("session_id", sessionId).
		Msg("Deleted client")

	return nil
}

func (api *api) PollClientState(sessionId string) (*PollClientStateResponse, error) {
	dbClient := db.Client{}
	err := api.db.First(&dbClient, "session_id = ?", sessionId).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = api.db.Model(&dbClient).Update("last_seen_at", &now).Error
	if err != nil {
		logger.Logger.Error().Err(err).
			Str("session_id", sessionId).
			Msg("Failed to update client last seen time")
	}

	tracker := api.svc.GetTrackers().GetOrCreate(sessionId, api.svc.GetAppState())
	property, value, changed := tracker.Poll(api.svc.GetAppState())

	return &PollClientStateResponse{
		Changed:  changed,
		Property: property,
		Value:    value,
	}, nil
}

func (api *api) GetLogOutput(ctx context.Context, logType string, getLogRequest *GetLogOutputRequest) (*GetLogOutputResponse, error) {
	var err error
	var logData []byte

	if logType == LogTypeApp {
		logFileName := logger.GetLogFilePath()
		if logFileName == "" {
			logData = []byte("file log is disabled")
		} else {
			logData, err = utils.ReadFileTail(logFileName, getLogRequest.MaxLen)
			if err != nil {
				return nil, err
			}
		}
	} else {
		return nil, fmt.Errorf("invalid log type: '%s'", logType)
	}

	return &GetLogOutputResponse{Log: string(logData)}, nil
}

func (api *api) Health(ctx context.Context) (*HealthResponse, error) {
	var alarms []HealthAlarm

	sqlDB, err := api.db.DB()
	if err != nil {
		alarms = append(alarms, NewHealthAlarm(HealthAlarmKindDatabaseUnreachable, err.Error()))
	} else if err := sqlDB.PingContext(ctx); err != nil {
		alarms = append(alarms, NewHealthAlarm(HealthAlarmKindDatabaseUnreachable, err.Error()))
	}

	if !api.svc.StateLoaded() {
		alarms = append(alarms, NewHealthAlarm(HealthAlarmKindStateNotLoaded, nil))
	}

	return &HealthResponse{Alarms: alarms}, nil
}

func (api *api) SendEvent(event string, properties interface{}) {
	api.svc.GetEventPublisher().Publish(&events.Event{
		Event:      event,
		Properties: properties,
	})
}

func (api *api) toStateResponse() *StateResponse {
	appState := api.svc.GetAppState()

	response := &StateResponse{
		Message: appState.GetMessage(),
		Count:   appState.GetCount(),
	}
	if lastSaveTime := appState.GetLastSaveTime(); !lastSaveTime.IsZero() {
		response.LastSaveTime = &lastSaveTime
	}

	return response
}

func (api *api) toApiClient(dbClient *db.Client) *Client {
	client := Client{
		ID:         dbClient.ID,
		SessionId:  dbClient.SessionId,
		Name:       dbClient.Name,
		CreatedAt:  dbClient.CreatedAt,
		UpdatedAt:  dbClient.UpdatedAt,
		LastSeenAt: dbClient.LastSeenAt,
	}

	if dbClient.Metadata != nil {
		var metadata map[string]interface{}
		if err := json.Unmarshal(dbClient.Metadata, &metadata); err != nil {
			logger.Logger.Error().Err(err).
				Str("session_id", dbClient.SessionId).
				Msg("Failed to deserialize client metadata")
		} else {
			client.Metadata = metadata
		}
	}

	return &client
}
