package indicator

import (
	"time"

	"github.com/oshokin/regatta-starter/internal/clock"
	race "github.com/oshokin/regatta-starter/internal/domain/race"
	"github.com/oshokin/regatta-starter/internal/output"
)

const (
	// blinkOn and blinkOff pace the mode-display blinks.
	blinkOn  = 200 * time.Millisecond
	blinkOff = 300 * time.Millisecond
)

// Indicator drives the yellow and red committee lamps. All methods block on
// the calling thread and never fail; lamp faults on a real device are only
// visible physically.
type Indicator struct {
	// yellow is lit while a rolling mode is selected.
	yellow output.Line
	// red shows the mode blink count when idle and the final-minute cue
	// during a sequence.
	red output.Line
	// clock paces the blinks.
	clock clock.Clock
}

// New returns an indicator over the two lamp lines.
func New(yellow, red output.Line, c clock.Clock) *Indicator {
	return &Indicator{
		yellow: yellow,
		red:    red,
		clock:  c,
	}
}

// SetFinalMinute drives the red lamp as the final-minute cue.
func (i *Indicator) SetFinalMinute(lit bool) {
	i.red.Set(lit)
}

// ShowMode presents the selected mode: yellow steady for rolling modes, red
// blinked once per protocol index. Blocking, idle phase only.
func (i *Indicator) ShowMode(m race.Mode) {
	p := m.Pattern()

	i.yellow.Set(p.YellowOn)
	i.red.Set(false)

	for n := 0; n < p.RedBlinks; n++ {
		i.red.Set(true)
		i.clock.Sleep(blinkOn)
		i.red.Set(false)
		i.clock.Sleep(blinkOff)
	}
}
