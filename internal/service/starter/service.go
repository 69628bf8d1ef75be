package starter

import (
	"context"

	"github.com/google/uuid"

	race "github.com/oshokin/regatta-starter/internal/domain/race"
	"github.com/oshokin/regatta-starter/internal/logger"
	"github.com/oshokin/regatta-starter/internal/metrics"
	"github.com/oshokin/regatta-starter/internal/selector"
	"github.com/oshokin/regatta-starter/internal/trigger"
)

// eventSource delivers qualified idle-phase button events.
type eventSource interface {
	Next(ctx context.Context) (trigger.Event, error)
}

// modeDisplay presents the selection on the indicator lamps.
type modeDisplay interface {
	ShowMode(m race.Mode)
}

// sequenceRunner executes the selected mode's signal program to completion.
type sequenceRunner interface {
	Run(ctx context.Context, m race.Mode)
}

// controller runs the idle phase: it watches the buttons, changes modes and
// hands control to the sequencing engine on a start event. While a sequence
// executes, the controller is blocked inside Run and nothing observes the
// buttons; a non-rolling run returning re-arms the watcher by looping.
type controller struct {
	// selector owns the mode selection.
	selector *selector.Selector
	// watcher delivers qualified button events.
	watcher eventSource
	// display presents the selection.
	display modeDisplay
	// orchestrator executes sequences.
	orchestrator sequenceRunner
	// metrics counts started sequences.
	metrics *metrics.Metrics
}

// loop is the single consumer loop of the controller. It returns only on
// context cancellation.
func (c *controller) loop(ctx context.Context) error {
	c.display.ShowMode(c.selector.Current())

	for {
		ev, err := c.watcher.Next(ctx)
		if err != nil {
			return err
		}

		switch ev {
		case trigger.EventModeChange:
			c.display.ShowMode(c.selector.Advance(ctx))
		case trigger.EventStart:
			c.runSequence(ctx)
		}
	}
}

// runSequence executes the selected mode under a fresh run identity.
func (c *controller) runSequence(ctx context.Context) {
	m := c.selector.Current()

	runCtx := logger.WithKV(ctx, "run_id", uuid.NewString(), "mode", m.String())
	c.metrics.SequencesStarted.WithLabelValues(m.String()).Inc()

	c.orchestrator.Run(runCtx, m)
}
