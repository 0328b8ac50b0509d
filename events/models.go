package events

import (
	"context"
	"time"
)

type EventSubscriber interface {
	ConsumeEvent(ctx context.Context, event *Event, globalProperties map[string]interface{})
}

type EventPublisher interface {
	RegisterSubscriber(eventListener EventSubscriber)
	RemoveSubscriber(eventListener EventSubscriber)
	SetGlobalProperty(key string, value interface{})
	Publish(event *Event)
	PublishSync(event *Event)
}

type Event struct {
	Event      string      `json:"event"`
	Properties interface{} `json:"properties,omitempty"`
}

// PropertyChangedEventProperties is published once per setter call with the
// changed property's name and its new value.
type PropertyChangedEventProperties struct {
	Property string      `json:"property"`
	Value    interface{} `json:"value"`
}

type StateRestoredEventProperties struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type StateSavedEventProperties struct {
	SavedAt time.Time `json:"savedAt"`
}

type ClientRegisteredEventProperties struct {
	SessionId string `json:"sessionId"`
	Name      string `json:"name"`
}
