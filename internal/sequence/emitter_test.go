package sequence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/regatta-starter/internal/clock"
	race "github.com/oshokin/regatta-starter/internal/domain/race"
)

// transition is one recorded line level change with its virtual offset.
type transition struct {
	at     time.Duration
	active bool
}

// lineRecorder captures line transitions against a virtual clock.
type lineRecorder struct {
	clock       *clock.Virtual
	start       time.Time
	transitions []transition
}

func newLineRecorder(v *clock.Virtual) *lineRecorder {
	return &lineRecorder{clock: v, start: v.Now()}
}

// Set implements output.Line.
func (l *lineRecorder) Set(active bool) {
	l.transitions = append(l.transitions, transition{
		at:     l.clock.Now().Sub(l.start),
		active: active,
	})
}

// TestSoundClaxonDrivesHorn verifies the horn is active for the tone length,
// inactive for the silence, and the call blocks for the full sum.
func TestSoundClaxonDrivesHorn(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))
	horn := newLineRecorder(v)
	e := NewToneEmitter(v, horn, &lineRecorder{clock: v, start: v.Now()})

	before := v.Now()
	e.SoundClaxon(time.Second, 500*time.Millisecond)

	require.Equal(t, 1500*time.Millisecond, v.Now().Sub(before))
	require.Equal(t, []transition{
		{at: 0, active: true},
		{at: time.Second, active: false},
	}, horn.transitions)
}

// TestBeepEventPulsesBeeper verifies cue pulse count and spacing.
func TestBeepEventPulsesBeeper(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))
	beeper := newLineRecorder(v)
	e := NewToneEmitter(v, &lineRecorder{clock: v, start: v.Now()}, beeper)

	before := v.Now()
	e.BeepEvent(3)

	require.Equal(t, 3*time.Second, v.Now().Sub(before))
	require.Len(t, beeper.transitions, 6)

	for i := 0; i < 3; i++ {
		on := beeper.transitions[2*i]
		off := beeper.transitions[2*i+1]
		require.True(t, on.active)
		require.False(t, off.active)
		require.Equal(t, time.Duration(i)*time.Second, on.at)
		require.Equal(t, BeepOn, off.at-on.at)
	}
}

// TestEmitterObserver checks the emission observer sees every event.
func TestEmitterObserver(t *testing.T) {
	t.Parallel()

	v := clock.NewVirtual(time.Unix(0, 0))
	e := NewToneEmitter(v, newLineRecorder(v), newLineRecorder(v))

	var seen []race.SignalEvent

	e.OnEvent(func(ev race.SignalEvent) { seen = append(seen, ev) })

	e.SoundClaxon(time.Second, 0)
	e.BeepEvent(2)

	require.Len(t, seen, 2)
	require.Equal(t, race.SignalClaxon, seen[0].Kind)
	require.Equal(t, race.SignalBeep, seen[1].Kind)
	require.Equal(t, 2, seen[1].Count)
}
