package race

import "time"

// SignalKind identifies the category of an emitted signal event.
type SignalKind string

const (
	// SignalClaxon is a single claxon pulse (tone followed by silence).
	SignalClaxon SignalKind = "claxon"
	// SignalBeep is a committee cue of short beeper pulses.
	SignalBeep SignalKind = "beep"
	// SignalFinalMinute is a final-minute indicator transition.
	SignalFinalMinute SignalKind = "final-minute"
)

// SignalEvent describes one emitted pulse or indicator transition.
// It is pure data with no ownership concerns.
type SignalEvent struct {
	// Kind is the event category.
	Kind SignalKind
	// Tone is the active duration of a claxon pulse.
	Tone time.Duration
	// Silence is the inactive duration following a claxon pulse.
	Silence time.Duration
	// Count is the number of pulses in a beep cue.
	Count int
	// On is the active duration of each beep pulse.
	On time.Duration
	// Off is the inactive duration between beep pulses.
	Off time.Duration
	// Lit is the new lamp state for indicator transitions.
	Lit bool
}

// ClaxonEvent builds a claxon pulse event.
func ClaxonEvent(tone, silence time.Duration) SignalEvent {
	return SignalEvent{
		Kind:    SignalClaxon,
		Tone:    tone,
		Silence: silence,
	}
}

// BeepCueEvent builds a beep cue event.
func BeepCueEvent(count int, on, off time.Duration) SignalEvent {
	return SignalEvent{
		Kind:  SignalBeep,
		Count: count,
		On:    on,
		Off:   off,
	}
}

// FinalMinuteEvent builds an indicator transition event.
func FinalMinuteEvent(lit bool) SignalEvent {
	return SignalEvent{
		Kind: SignalFinalMinute,
		Lit:  lit,
	}
}
