package events

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/carlfranklin/AppStateAuto/logger"
)

type eventPublisher struct {
	subscribers      []EventSubscriber
	subscriberMtx    sync.Mutex
	globalProperties map[string]interface{}
}

func NewEventPublisher() *eventPublisher {
	return &eventPublisher{
		subscribers:      []EventSubscriber{},
		globalProperties: map[string]interface{}{},
	}
}

// RegisterSubscriber adds the subscriber to the fan-out list. Registering the
// same subscriber reference twice is a no-op so it never receives an event
// more than once per publish.
func (ep *eventPublisher) RegisterSubscriber(subscriber EventSubscriber) {
	ep.subscriberMtx.Lock()
	defer ep.subscriberMtx.Unlock()

	for _, existing := range ep.subscribers {
		if existing == subscriber {
			logger.Logger.Debug().Msg("Subscriber already registered, ignoring")
			return
		}
	}
	ep.subscribers = append(ep.subscribers, subscriber)
}

func (ep *eventPublisher) RemoveSubscriber(subscriberToRemove EventSubscriber) {
	ep.subscriberMtx.Lock()
	defer ep.subscriberMtx.Unlock()

	for i, subscriber := range ep.subscribers {
		if subscriber == subscriberToRemove {
			ep.subscribers = slices.Delete(ep.subscribers, i, i+1)
			return
		}
	}
}

func (ep *eventPublisher) SetGlobalProperty(key string, value interface{}) {
	ep.subscriberMtx.Lock()
	defer ep.subscriberMtx.Unlock()
	ep.globalProperties[key] = value
}

// Publish delivers the event asynchronously. There is no ordering guarantee
// relative to other published events.
func (ep *eventPublisher) Publish(event *Event) {
	go ep.PublishSync(event)
}

// PublishSync delivers the event to all currently registered subscribers in
// registration order on the caller's goroutine.
func (ep *eventPublisher) PublishSync(event *Event) {
	ep.subscriberMtx.Lock()
	subscribers := slices.Clone(ep.subscribers)
	globalProperties := maps.Clone(ep.globalProperties)
	ep.subscriberMtx.Unlock()

	logger.Logger.Debug().Str("event", event.Event).Msg("Publishing event")
	for _, subscriber := range subscribers {
		ep.consumeEvent(subscriber, event, globalProperties)
	}
}

// consumeEvent delivers to a single subscriber. A panicking subscriber must
// not prevent delivery to the subscribers after it.
func (ep *eventPublisher) consumeEvent(subscriber EventSubscriber, event *Event, globalProperties map[string]interface{}) {
	defer func() {
		if r := recover(); r != nil {
			logger.Logger.Error().
				Interface("panic", r).
				Str("event", event.Event).
				Msg("Subscriber panicked while consuming event")
		}
	}()

	subscriber.ConsumeEvent(context.Background(), event, globalProperties)
}
