package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/regatta-starter/internal/clock"
	race "github.com/oshokin/regatta-starter/internal/domain/race"
)

// lamp records line transitions.
type lamp struct {
	states []bool
}

// Set implements output.Line.
func (l *lamp) Set(active bool) {
	l.states = append(l.states, active)
}

// lit returns the current lamp state.
func (l *lamp) lit() bool {
	return len(l.states) > 0 && l.states[len(l.states)-1]
}

// blinks counts off-to-on transitions.
func (l *lamp) blinks() int {
	count := 0
	for _, s := range l.states {
		if s {
			count++
		}
	}

	return count
}

// TestSetFinalMinute verifies the red lamp follows the final-minute cue.
func TestSetFinalMinute(t *testing.T) {
	t.Parallel()

	red := new(lamp)
	ind := New(new(lamp), red, clock.NewVirtual(time.Unix(0, 0)))

	ind.SetFinalMinute(true)
	require.True(t, red.lit())

	ind.SetFinalMinute(false)
	require.False(t, red.lit())
}

// TestShowModePatterns verifies the per-mode yellow state and red blink count.
func TestShowModePatterns(t *testing.T) {
	t.Parallel()

	for m := race.Mode(0); m.Valid(); m++ {
		yellow, red := new(lamp), new(lamp)
		ind := New(yellow, red, clock.NewVirtual(time.Unix(0, 0)))

		ind.ShowMode(m)

		p := m.Pattern()
		require.Equal(t, p.YellowOn, yellow.lit(), "mode %s", m)
		require.Equal(t, p.RedBlinks, red.blinks(), "mode %s", m)
		require.False(t, red.lit(), "mode %s", m)
	}
}
