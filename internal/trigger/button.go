package trigger

import (
	"context"
	"time"

	"github.com/oshokin/regatta-starter/internal/clock"
)

// Input reports the instantaneous pressed level of a physical button.
type Input interface {
	Pressed() bool
}

// Button turns a raw input level into debounced, hold-qualified edge events.
// Debounce is by persistence: an edge qualifies only if the level still holds
// after a fixed minimum hold duration. There are no retries; an edge that
// fails the hold check is a bounce and is silently discarded.
type Button struct {
	// input is the raw level source.
	input Input
	// clock paces the polling.
	clock clock.Clock
	// pollInterval is the fixed sampling interval.
	pollInterval time.Duration
	// holdFor is the minimum duration an edge must persist to qualify.
	holdFor time.Duration
	// onBounce observes discarded edges, e.g. for metrics.
	onBounce func()
}

// NewButton returns a button over the provided input.
func NewButton(in Input, c clock.Clock, pollInterval, holdFor time.Duration) *Button {
	return &Button{
		input:        in,
		clock:        c,
		pollInterval: pollInterval,
		holdFor:      holdFor,
	}
}

// OnBounce installs the bounce observer.
func (b *Button) OnBounce(fn func()) {
	b.onBounce = fn
}

// AwaitEdge blocks until a qualifying press occurs and the button is released
// again. It returns the context error on cancellation, nil otherwise.
func (b *Button) AwaitEdge(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if b.pressed() {
			if b.qualify() {
				return b.waitRelease(ctx)
			}

			continue
		}

		b.clock.Sleep(b.pollInterval)
	}
}

// pressed samples the raw level.
func (b *Button) pressed() bool {
	return b.input.Pressed()
}

// qualify re-checks the edge once after the hold duration.
func (b *Button) qualify() bool {
	b.clock.Sleep(b.holdFor)

	if b.pressed() {
		return true
	}

	if b.onBounce != nil {
		b.onBounce()
	}

	return false
}

// waitRelease polls at the fixed interval until the button is released.
func (b *Button) waitRelease(ctx context.Context) error {
	for b.pressed() {
		if err := ctx.Err(); err != nil {
			return err
		}

		b.clock.Sleep(b.pollInterval)
	}

	return nil
}
