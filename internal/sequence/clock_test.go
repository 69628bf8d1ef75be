package sequence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/regatta-starter/internal/clock"
)

// TestWaitOutCompensatesElapsed verifies the wait equals the nominal length
// minus the processing time consumed since the anchor.
func TestWaitOutCompensatesElapsed(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))
	sc := NewSignalClock(v)

	anchor := v.Now()

	// Simulate 12s of emission work.
	v.Sleep(12 * time.Second)

	slept := sc.WaitOut(time.Minute, anchor)
	require.Equal(t, 48*time.Second, slept)
	require.Equal(t, anchor.Add(time.Minute), v.Now())
}

// TestWaitOutClampsToZero verifies overruns block for zero and fire the
// observer instead of wrapping or aborting.
func TestWaitOutClampsToZero(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))
	sc := NewSignalClock(v)

	var gotNominal, gotElapsed time.Duration

	sc.OnOverrun(func(nominal, elapsed time.Duration) {
		gotNominal, gotElapsed = nominal, elapsed
	})

	anchor := v.Now()
	v.Sleep(90 * time.Second)

	slept := sc.WaitOut(time.Minute, anchor)
	require.Zero(t, slept)
	require.Equal(t, time.Minute, gotNominal)
	require.Equal(t, 90*time.Second, gotElapsed)

	// Time did not move backwards.
	require.Equal(t, anchor.Add(90*time.Second), v.Now())
}

// TestWaitOutExactElapsedIsNotAnOverrun checks the boundary where the
// processing time equals the nominal length.
func TestWaitOutExactElapsedIsNotAnOverrun(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))
	sc := NewSignalClock(v)

	fired := false

	sc.OnOverrun(func(time.Duration, time.Duration) { fired = true })

	anchor := v.Now()
	v.Sleep(time.Minute)

	require.Zero(t, sc.WaitOut(time.Minute, anchor))
	require.False(t, fired)
}

// TestWaitOutWallClock exercises the wait against the real clock within the
// tolerance the sequence accuracy demands.
func TestWaitOutWallClock(t *testing.T) {
	t.Parallel()

	sc := NewSignalClock(clock.System{})

	// 20ms of the 50ms interval already consumed.
	anchor := time.Now().Add(-20 * time.Millisecond)

	before := time.Now()
	sc.WaitOut(50*time.Millisecond, anchor)
	blocked := time.Since(before)

	require.GreaterOrEqual(t, blocked, 25*time.Millisecond)
	require.Less(t, blocked, 50*time.Millisecond)
}
