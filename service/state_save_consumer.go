package service

import (
	"context"

	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/events"
	"github.com/carlfranklin/AppStateAuto/persist"
)

type stateSaveConsumer struct {
	events.EventSubscriber
	writer *persist.Writer
}

// Each property change schedules a debounced save of the full snapshot.
func (c *stateSaveConsumer) ConsumeEvent(ctx context.Context, event *events.Event, globalProperties map[string]interface{}) {
	if event.Event != constants.STATE_PROPERTY_CHANGED_EVENT {
		return
	}
	c.writer.Trigger()
}
