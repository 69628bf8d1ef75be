package trigger

import (
	"context"
	"time"

	"github.com/oshokin/regatta-starter/internal/clock"
)

// Event is a qualified button event observed during the idle phase.
type Event int

const (
	// EventStart is a qualified start-trigger press.
	EventStart Event = iota + 1
	// EventModeChange is a qualified mode-button press.
	EventModeChange
)

// String returns the event name for logs.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventModeChange:
		return "mode-change"
	default:
		return "none"
	}
}

// Watcher multiplexes the start and mode buttons into a single synchronous
// poll loop. It is only ever called from the idle phase; while a signal
// program runs nothing samples the inputs at all, so a press during a
// sequence can never be observed, queued or delivered late.
type Watcher struct {
	// start is the start trigger.
	start *Button
	// mode is the mode-change button.
	mode *Button
	// clock paces the idle polling.
	clock clock.Clock
	// pollInterval is the fixed sampling interval.
	pollInterval time.Duration
}

// NewWatcher returns a watcher over the two buttons.
func NewWatcher(start, mode *Button, c clock.Clock, pollInterval time.Duration) *Watcher {
	return &Watcher{
		start:        start,
		mode:         mode,
		clock:        c,
		pollInterval: pollInterval,
	}
}

// Next blocks until the first qualified event. The start trigger takes
// precedence when both buttons are pressed in the same sample.
func (w *Watcher) Next(ctx context.Context) (Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if w.start.pressed() {
			if w.start.qualify() {
				if err := w.start.waitRelease(ctx); err != nil {
					return 0, err
				}

				return EventStart, nil
			}

			continue
		}

		if w.mode.pressed() {
			if w.mode.qualify() {
				if err := w.mode.waitRelease(ctx); err != nil {
					return 0, err
				}

				return EventModeChange, nil
			}

			continue
		}

		w.clock.Sleep(w.pollInterval)
	}
}
