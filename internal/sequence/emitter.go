package sequence

import (
	"time"

	"github.com/oshokin/regatta-starter/internal/clock"
	race "github.com/oshokin/regatta-starter/internal/domain/race"
	"github.com/oshokin/regatta-starter/internal/output"
)

// Emitter produces the audible signals of a program.
type Emitter interface {
	// SoundClaxon drives the claxon active for tone, then inactive for
	// silence, blocking for the full sum. Calls never overlap.
	SoundClaxon(tone, silence time.Duration)
	// BeepEvent emits count short cue pulses warning an observer that a
	// signal is imminent. Competitors are not signalled by cues.
	BeepEvent(count int)
}

// Indicator drives the final-minute visual cue. It never fails.
type Indicator interface {
	SetFinalMinute(lit bool)
}

const (
	// BeepOn is the active duration of each cue pulse.
	BeepOn = 500 * time.Millisecond
	// BeepOff is the inactive duration between cue pulses.
	BeepOff = 500 * time.Millisecond
)

// ToneEmitter drives the physical claxon and beeper lines.
type ToneEmitter struct {
	// clock paces the pulses.
	clock clock.Clock
	// horn is the claxon relay line.
	horn output.Line
	// beeper is the committee cue line.
	beeper output.Line
	// onEvent observes every emitted event, e.g. for metrics.
	onEvent func(race.SignalEvent)
}

// NewToneEmitter returns an emitter on the provided lines.
func NewToneEmitter(c clock.Clock, horn, beeper output.Line) *ToneEmitter {
	return &ToneEmitter{
		clock:  c,
		horn:   horn,
		beeper: beeper,
	}
}

// OnEvent installs the emission observer.
func (e *ToneEmitter) OnEvent(fn func(race.SignalEvent)) {
	e.onEvent = fn
}

// SoundClaxon implements Emitter.
func (e *ToneEmitter) SoundClaxon(tone, silence time.Duration) {
	if e.onEvent != nil {
		e.onEvent(race.ClaxonEvent(tone, silence))
	}

	e.horn.Set(true)
	e.clock.Sleep(tone)
	e.horn.Set(false)
	e.clock.Sleep(silence)
}

// BeepEvent implements Emitter.
func (e *ToneEmitter) BeepEvent(count int) {
	if e.onEvent != nil {
		e.onEvent(race.BeepCueEvent(count, BeepOn, BeepOff))
	}

	for i := 0; i < count; i++ {
		e.beeper.Set(true)
		e.clock.Sleep(BeepOn)
		e.beeper.Set(false)
		e.clock.Sleep(BeepOff)
	}
}
