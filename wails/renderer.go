package wails

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/carlfranklin/AppStateAuto/constants"
)

// WailsRenderer asks the frontend to re-render by emitting a dedicated
// runtime event. State values travel separately through the event
// subscriber; this is only the repaint signal.
type WailsRenderer struct {
	ctx context.Context
}

func NewWailsRenderer(ctx context.Context) *WailsRenderer {
	return &WailsRenderer{
		ctx: ctx,
	}
}

func (r *WailsRenderer) RequestRender() {
	if r.ctx == nil {
		return
	}

	runtime.EventsEmit(r.ctx, constants.RENDER_EVENT)
}
