package sequence

import (
	"time"

	"github.com/oshokin/regatta-starter/internal/clock"
	race "github.com/oshokin/regatta-starter/internal/domain/race"
)

// TimedEvent couples an emitted event with its offset into the recording.
type TimedEvent struct {
	// At is the offset from the start of the recording.
	At time.Duration
	// Event is the emitted pulse or indicator transition.
	Event race.SignalEvent
}

// Recorder captures the events a program emits, with their offsets, instead
// of driving hardware. It consumes exactly the time the real emitter would,
// so a program run against a virtual clock produces its nominal timeline.
// Recorder implements Emitter and Indicator.
type Recorder struct {
	// clock is the (typically virtual) time source shared with the runner.
	clock clock.Clock
	// start is the recording origin.
	start time.Time
	// events are the captured events in emission order.
	events []TimedEvent
}

// NewRecorder returns a recorder originating at the clock's current time.
func NewRecorder(c clock.Clock) *Recorder {
	return &Recorder{
		clock: c,
		start: c.Now(),
	}
}

// SoundClaxon implements Emitter.
func (r *Recorder) SoundClaxon(tone, silence time.Duration) {
	r.record(race.ClaxonEvent(tone, silence))
	r.clock.Sleep(tone + silence)
}

// BeepEvent implements Emitter.
func (r *Recorder) BeepEvent(count int) {
	r.record(race.BeepCueEvent(count, BeepOn, BeepOff))
	r.clock.Sleep(time.Duration(count) * (BeepOn + BeepOff))
}

// SetFinalMinute implements Indicator.
func (r *Recorder) SetFinalMinute(lit bool) {
	r.record(race.FinalMinuteEvent(lit))
}

// Events returns the captured events in emission order.
func (r *Recorder) Events() []TimedEvent {
	return r.events
}

// record appends an event stamped with the current offset.
func (r *Recorder) record(ev race.SignalEvent) {
	r.events = append(r.events, TimedEvent{
		At:    r.clock.Now().Sub(r.start),
		Event: ev,
	})
}
