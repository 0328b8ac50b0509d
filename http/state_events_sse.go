package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carlfranklin/AppStateAuto/events"
	"github.com/carlfranklin/AppStateAuto/logger"
)

// stateEventsSSEHandler provides Server-Sent Events for state notifications
func (httpSvc *HttpService) stateEventsSSEHandler(c echo.Context) error {
	logger.Logger.Info().Msg("stateEventsSSEHandler connection attempt")

	// Check if flushing is supported
	if _, ok := c.Response().Writer.(http.Flusher); !ok {
		logger.Logger.Error().Msg("Streaming not supported: ResponseWriter does not implement http.Flusher")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Streaming not supported by server"})
	}

	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().Header().Set("X-Accel-Buffering", "no")

	// Flush headers immediately
	c.Response().Flush()

	// Create a channel for this client
	eventChan := make(chan *events.Event, 16)

	// Subscribe to state events
	subscriber := &stateEventSubscriber{
		handler: func(event *events.Event) {
			if strings.HasPrefix(event.Event, "state.") {
				select {
				case eventChan <- event:
				default:
					// Channel full, skip event
				}
			}
		},
	}
	httpSvc.eventPublisher.RegisterSubscriber(subscriber)
	defer httpSvc.eventPublisher.RemoveSubscriber(subscriber)

	// Send keepalive and events
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case <-ticker.C:
			// Send keepalive comment
			if _, err := c.Response().Write([]byte(": keepalive\n\n")); err != nil {
				return nil
			}
			c.Response().Flush()
		case event := <-eventChan:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if _, err := c.Response().Write([]byte(fmt.Sprintf("event: %s\ndata: %s\n\n", event.Event, string(data)))); err != nil {
				return nil
			}
			c.Response().Flush()
		}
	}
}

type stateEventSubscriber struct {
	handler func(event *events.Event)
}

func (s *stateEventSubscriber) ConsumeEvent(ctx context.Context, event *events.Event, globalProperties map[string]interface{}) {
	s.handler(event)
}
