package sequence

import (
	"time"

	"github.com/oshokin/regatta-starter/internal/clock"
)

// SignalClock is the drift-compensated interval waiter every program uses.
// Emitting tones consumes measurable time; failing to subtract it would
// accumulate drift over multi-minute sequences.
type SignalClock struct {
	// clock supplies time and blocking sleeps.
	clock clock.Clock
	// onOverrun is invoked when an interval's processing time exceeded its
	// nominal length. The wait is clamped to zero and the sequence continues:
	// a late signal is acceptable, a frozen sequence is not.
	onOverrun func(nominal, elapsed time.Duration)
}

// NewSignalClock returns a signal clock on the provided time source.
func NewSignalClock(c clock.Clock) *SignalClock {
	return &SignalClock{clock: c}
}

// OnOverrun installs the timing-violation observer.
func (s *SignalClock) OnOverrun(fn func(nominal, elapsed time.Duration)) {
	s.onOverrun = fn
}

// Now returns the current time, used to capture timing anchors.
func (s *SignalClock) Now() time.Time {
	return s.clock.Now()
}

// WaitOut blocks for the nominal length minus the processing time elapsed
// since the anchor, clamped to a minimum of zero. It returns the duration
// actually slept.
func (s *SignalClock) WaitOut(nominal time.Duration, anchor time.Time) time.Duration {
	elapsed := s.clock.Now().Sub(anchor)

	remaining := nominal - elapsed
	if remaining <= 0 {
		if remaining < 0 && s.onOverrun != nil {
			s.onOverrun(nominal, elapsed)
		}

		return 0
	}

	s.clock.Sleep(remaining)

	return remaining
}
