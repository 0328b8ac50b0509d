package service

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/db"
	"github.com/carlfranklin/AppStateAuto/events"
	"github.com/carlfranklin/AppStateAuto/logger"
)

type stateChangeConsumer struct {
	events.EventSubscriber
	db        *gorm.DB
	sessionId string
}

// Every property change is appended to the state_changes log so the UI can
// show the mutation history for the current session.
func (c *stateChangeConsumer) ConsumeEvent(ctx context.Context, event *events.Event, globalProperties map[string]interface{}) {
	if event.Event != constants.STATE_PROPERTY_CHANGED_EVENT {
		return
	}

	properties, ok := event.Properties.(*events.PropertyChangedEventProperties)
	if !ok {
		logger.Logger.Error().Interface("event", event).Msg("Failed to cast event.Properties to property changed event properties")
		return
	}

	value, err := json.Marshal(properties.Value)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode property value")
		return
	}

	stateChange := &db.StateChange{
		SessionId: c.sessionId,
		Property:  properties.Property,
		Value:     datatypes.JSON(value),
	}
	err = c.db.Create(stateChange).Error
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to save state change to db")
	}
}
