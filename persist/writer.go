package persist

import (
	"context"
	"time"

	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/logger"
)

// Writer coalesces rapid save triggers into a single write. Triggers landing
// inside the debounce window collapse into one save call, and saves are
// serialized on the writer goroutine so two writes can never race.
type Writer struct {
	save     func() error
	debounce time.Duration

	trigger chan struct{}
	flush   chan chan error
	done    chan struct{}
}

func NewWriter(save func() error, debounce time.Duration) *Writer {
	if debounce <= 0 {
		debounce = constants.DEFAULT_SAVE_DEBOUNCE
	}
	return &Writer{
		save:     save,
		debounce: debounce,
		trigger:  make(chan struct{}, 1),
		flush:    make(chan chan error),
		done:     make(chan struct{}),
	}
}

// Start runs the writer loop until ctx is canceled. A save still pending at
// shutdown is written out before the loop exits.
func (w *Writer) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *Writer) run(ctx context.Context) {
	defer close(w.done)

	var timer *time.Timer
	var timerC <-chan time.Time
	dirty := false

	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			timerC = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			if dirty {
				err := w.save()
				if err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to save state on shutdown")
				}
			}
			return
		case <-w.trigger:
			dirty = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			}
		case <-timerC:
			timer = nil
			timerC = nil
			dirty = false
			err := w.save()
			if err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to save state")
			}
		case reply := <-w.flush:
			stopTimer()
			dirty = false
			reply <- w.save()
		}
	}
}

// Trigger requests a save after the debounce window. It never blocks.
func (w *Writer) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// Flush saves immediately, regardless of pending triggers, and waits for the
// write to finish. After shutdown it returns nil; the loop has already
// flushed on exit.
func (w *Writer) Flush() error {
	reply := make(chan error, 1)
	select {
	case w.flush <- reply:
		return <-reply
	case <-w.done:
		return nil
	}
}
