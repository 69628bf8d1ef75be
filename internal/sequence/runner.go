package sequence

import (
	"time"

	"github.com/oshokin/regatta-starter/internal/config"
)

// Runner is the sequence-runner context threaded through every program
// invocation. It owns the timing anchor, replacing the process-wide flags a
// naive implementation would share between programs.
type Runner struct {
	// signalClock performs the drift-compensated waits.
	signalClock *SignalClock
	// emitter produces the audible signals.
	emitter Emitter
	// indicator drives the final-minute lamp.
	indicator Indicator
	// timings sets the nominal tone durations.
	timings config.Timings

	// anchor is captured immediately before each emission block; waits
	// subtract the time elapsed since it. It deliberately survives across
	// program invocations: a rolling re-entry waits against the anchor of
	// the previous iteration's start tone, which can accumulate drift over
	// successive rolling iterations. Kept as observed behavior.
	anchor time.Time
}

// NewRunner builds a runner over the provided collaborators.
func NewRunner(sc *SignalClock, e Emitter, ind Indicator, t config.Timings) *Runner {
	return &Runner{
		signalClock: sc,
		emitter:     e,
		indicator:   ind,
		timings:     t,
	}
}

// mark captures a fresh timing anchor.
func (r *Runner) mark() {
	r.anchor = r.signalClock.Now()
}

// wait blocks until the interval measured from the current anchor has fully
// elapsed, compensating for emission time already spent.
func (r *Runner) wait(interval time.Duration) {
	r.signalClock.WaitOut(interval, r.anchor)
}

// longTones emits n long claxon pulses.
func (r *Runner) longTones(n int) {
	for i := 0; i < n; i++ {
		r.emitter.SoundClaxon(r.timings.LongTone, r.timings.ToneGap)
	}
}

// shortTones emits n short claxon pulses.
func (r *Runner) shortTones(n int) {
	for i := 0; i < n; i++ {
		r.emitter.SoundClaxon(r.timings.ShortTone, r.timings.ToneGap)
	}
}

// startTone emits the extended start signal. No trailing silence: the tone
// ends the sequence.
func (r *Runner) startTone() {
	r.emitter.SoundClaxon(r.timings.StartTone, 0)
}

// beepCue emits the three-pulse committee warning cue.
func (r *Runner) beepCue() {
	r.emitter.BeepEvent(warningBeepCount)
}
