package trigger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/regatta-starter/internal/clock"
)

const (
	testPoll = 10 * time.Millisecond
	testHold = 50 * time.Millisecond
)

// window is a half-open interval of virtual offsets during which the
// scripted input reads pressed.
type window struct {
	from, to time.Duration
}

// scriptedInput reads pressed according to virtual time windows.
type scriptedInput struct {
	clock   *clock.Virtual
	start   time.Time
	windows []window
}

func newScriptedInput(v *clock.Virtual, windows ...window) *scriptedInput {
	return &scriptedInput{
		clock:   v,
		start:   v.Now(),
		windows: windows,
	}
}

// Pressed implements Input.
func (s *scriptedInput) Pressed() bool {
	offset := s.clock.Now().Sub(s.start)

	for _, w := range s.windows {
		if offset >= w.from && offset < w.to {
			return true
		}
	}

	return false
}

// TestAwaitEdgeDiscardsBounces verifies a press shorter than the hold
// duration is silently discarded and a persistent press qualifies.
func TestAwaitEdgeDiscardsBounces(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))
	start := v.Now()

	// A 20ms bounce, then a 200ms genuine press.
	in := newScriptedInput(v,
		window{from: 100 * time.Millisecond, to: 120 * time.Millisecond},
		window{from: 300 * time.Millisecond, to: 500 * time.Millisecond},
	)

	b := NewButton(in, v, testPoll, testHold)

	bounces := 0

	b.OnBounce(func() { bounces++ })

	require.NoError(t, b.AwaitEdge(context.Background()))
	require.Equal(t, 1, bounces)

	// The edge is delivered only after hold validation and release.
	require.GreaterOrEqual(t, v.Now().Sub(start), 500*time.Millisecond)
}

// TestAwaitEdgeHonorsCancellation checks that a canceled context unblocks
// the wait with its error.
func TestAwaitEdgeHonorsCancellation(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))
	b := NewButton(newScriptedInput(v), v, testPoll, testHold)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, b.AwaitEdge(ctx), context.Canceled)
}

// TestWatcherReturnsFirstQualifiedEvent checks the idle watcher reports mode
// and start presses in order and ignores bounces on either button.
func TestWatcherReturnsFirstQualifiedEvent(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))

	startButton := NewButton(newScriptedInput(v,
		window{from: 600 * time.Millisecond, to: 800 * time.Millisecond},
	), v, testPoll, testHold)
	modeButton := NewButton(newScriptedInput(v,
		window{from: 200 * time.Millisecond, to: 210 * time.Millisecond}, // bounce
		window{from: 300 * time.Millisecond, to: 400 * time.Millisecond},
	), v, testPoll, testHold)

	w := NewWatcher(startButton, modeButton, v, testPoll)

	ev, err := w.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, EventModeChange, ev)

	ev, err = w.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, EventStart, ev)
}

// TestWatcherStartPrecedence checks the start trigger wins when both buttons
// read pressed in the same sample.
func TestWatcherStartPrecedence(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))

	pressed := window{from: 0, to: 200 * time.Millisecond}
	startButton := NewButton(newScriptedInput(v, pressed), v, testPoll, testHold)
	modeButton := NewButton(newScriptedInput(v, pressed), v, testPoll, testHold)

	w := NewWatcher(startButton, modeButton, v, testPoll)

	ev, err := w.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, EventStart, ev)
}
