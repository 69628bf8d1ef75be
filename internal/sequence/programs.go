package sequence

import (
	"time"

	race "github.com/oshokin/regatta-starter/internal/domain/race"
)

const (
	// warningBeepCount is the number of pulses in a committee cue.
	warningBeepCount = 3

	// countdownPulses is the number of one-second-spaced pulses before the start.
	countdownPulses = 5
	// countdownTone and countdownGap fix the count-down spacing at exactly
	// one second. They are intentionally not configurable.
	countdownTone = 500 * time.Millisecond
	countdownGap  = 500 * time.Millisecond
)

// Program is one protocol script. roll is false on the first invocation of a
// run and true on every later invocation inside a rolling loop; a rolling
// re-entry skips the leading signal block and folds into the countdown already
// anchored by the previous start tone.
type Program func(roll bool)

// ProgramFor returns the script for the mode. Modes are pre-validated by the
// host before a run starts.
func (r *Runner) ProgramFor(m race.Mode) Program {
	switch m {
	case race.ModePursuit:
		return r.pursuit
	case race.ModeRuleTwoSix, race.ModeRuleTwoSixRolling:
		return r.RuleTwoSix
	case race.ModeRuleTwoNineTwo, race.ModeRuleTwoNineTwoRolling:
		return r.RuleTwoNineTwo
	default:
		return r.AppendixS
	}
}

// AppendixS runs the Appendix S three-minute dinghy sequence:
// three long tones at T-3:00, two at T-2:00, one long and three short at
// T-1:30, one long at T-1:00, then the final minute.
func (r *Runner) AppendixS(roll bool) {
	r.appendixS(roll, false)
}

func (r *Runner) appendixS(roll, holdFinalMinute bool) {
	if !roll {
		r.mark()
		r.longTones(3) // T-3:00
	}

	r.wait(time.Minute)
	r.mark()
	r.longTones(2) // T-2:00
	r.wait(30 * time.Second)
	r.mark()
	r.longTones(1) // T-1:30
	r.shortTones(3)
	r.wait(30 * time.Second)
	r.mark()
	r.longTones(1) // T-1:00

	r.indicator.SetFinalMinute(true)
	r.AppendixSMinute()

	if !holdFinalMinute {
		r.indicator.SetFinalMinute(false)
	}
}

// AppendixSMinute runs the final sixty seconds of the Appendix S sequence:
// short tones at T-0:30, T-0:20 and T-0:10, five one-second-spaced pulses
// from T-0:05, then the extended start tone.
//
// The method is re-entrant: pursuit racing calls it repeatedly, each fleet
// starting exactly one minute after the previous one. The first wait runs
// against whatever anchor is in force, so a repeated call counts down from
// the previous start tone.
func (r *Runner) AppendixSMinute() {
	r.wait(30 * time.Second) // to T-0:30
	r.mark()
	r.shortTones(3)
	r.wait(10 * time.Second) // to T-0:20
	r.mark()
	r.shortTones(2)
	r.wait(10 * time.Second) // to T-0:10
	r.mark()
	r.shortTones(1)
	r.wait(5 * time.Second) // to T-0:05

	// Uncompensated: drift inside this five-second window is negligible.
	for i := 0; i < countdownPulses; i++ {
		r.emitter.SoundClaxon(countdownTone, countdownGap)
	}

	r.mark()
	r.startTone()
}

// pursuit runs the full Appendix S sequence for the first fleet, then only
// its final minute for every later fleet. The final-minute indicator stays
// lit for the whole pursuit run.
func (r *Runner) pursuit(roll bool) {
	if !roll {
		r.appendixS(false, true)

		return
	}

	r.AppendixSMinute()
}

// RuleTwoSix runs the RRS Rule 26 five-minute sequence: warning at T-5:00,
// preparatory at T-4:00, one-minute signal at T-1:00, start at T-0:00, each
// tone preceded by a committee beep cue fifteen seconds out.
func (r *Runner) RuleTwoSix(roll bool) {
	if !roll {
		r.mark()
		r.longTones(1) // T-5:00 warning
	}

	r.ruleTwoSixTail()
}

// ruleTwoSixTail runs Rule 26 from after its warning signal. RuleTwoNineTwo
// delegates here once it has emitted the five-minute tone itself, so the tone
// is neither re-anchored nor re-emitted on that path.
func (r *Runner) ruleTwoSixTail() {
	r.wait(45 * time.Second)
	r.mark()
	r.beepCue()
	r.wait(15 * time.Second) // to T-4:00
	r.mark()
	r.longTones(1) // preparatory
	r.wait(2*time.Minute + 45*time.Second)
	r.mark()
	r.beepCue()
	r.wait(15 * time.Second) // to T-1:00
	r.mark()
	r.longTones(1)
	r.indicator.SetFinalMinute(true)
	r.wait(45 * time.Second)
	r.mark()
	r.beepCue()
	r.wait(15 * time.Second) // to T-0:00
	r.mark()
	r.startTone()
	r.indicator.SetFinalMinute(false)
}

// RuleTwoNineTwo runs the Rule 29.2 general-recall sequence: two long tones
// at T-6:00, then the Rule 26 sequence from its T-5:00 warning onwards.
// Rolling re-entries fold directly into the Rule 26 rolling countdown.
func (r *Runner) RuleTwoNineTwo(roll bool) {
	if roll {
		r.RuleTwoSix(true)

		return
	}

	r.mark()
	r.longTones(2) // T-6:00 recall
	r.wait(45 * time.Second)
	r.mark()
	r.beepCue()
	r.wait(15 * time.Second) // to T-5:00
	r.mark()
	r.longTones(1) // warning, emitted here so the delegate does not repeat it
	r.ruleTwoSixTail()
}
