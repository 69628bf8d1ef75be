package race

// Mode selects a starting-signal program and its rolling behavior.
// Valid values are 0 through 6; the mode is fixed for the duration of a run.
type Mode uint8

const (
	// ModeAppendixS runs a single Appendix S three-minute sequence.
	ModeAppendixS Mode = iota
	// ModeAppendixSRolling repeats the Appendix S sequence for rolling fleet starts.
	ModeAppendixSRolling
	// ModePursuit runs Appendix S once, then repeats its final minute for
	// every subsequent pursuit fleet.
	ModePursuit
	// ModeRuleTwoSix runs a single Rule 26 five-minute sequence.
	ModeRuleTwoSix
	// ModeRuleTwoSixRolling repeats the Rule 26 sequence for rolling fleet starts.
	ModeRuleTwoSixRolling
	// ModeRuleTwoNineTwo runs a single Rule 29.2 six-minute general recall sequence.
	ModeRuleTwoNineTwo
	// ModeRuleTwoNineTwoRolling repeats the Rule 29.2 sequence for rolling fleet starts.
	ModeRuleTwoNineTwoRolling
)

// Count is the number of selectable modes.
const Count = 7

// Valid reports whether the mode is within the selectable range.
func (m Mode) Valid() bool {
	return m < Count
}

// Rolling reports whether the mode repeats its program indefinitely.
// Pursuit is inherently rolling: every fleet after the first reuses the
// final-minute program.
func (m Mode) Rolling() bool {
	switch m {
	case ModeAppendixSRolling, ModePursuit, ModeRuleTwoSixRolling, ModeRuleTwoNineTwoRolling:
		return true
	default:
		return false
	}
}

// Next returns the following mode, wrapping from the last mode back to zero.
func (m Mode) Next() Mode {
	return (m + 1) % Count
}

// String returns a human-readable mode name for logs and CLI output.
func (m Mode) String() string {
	switch m {
	case ModeAppendixS:
		return "appendix-s"
	case ModeAppendixSRolling:
		return "appendix-s-rolling"
	case ModePursuit:
		return "pursuit"
	case ModeRuleTwoSix:
		return "rule-26"
	case ModeRuleTwoSixRolling:
		return "rule-26-rolling"
	case ModeRuleTwoNineTwo:
		return "rule-29.2"
	case ModeRuleTwoNineTwoRolling:
		return "rule-29.2-rolling"
	default:
		return "invalid"
	}
}

// IndicatorPattern describes how the mode is presented on the indicator lamps
// while the controller is idle.
type IndicatorPattern struct {
	// YellowOn lights the yellow lamp for rolling modes.
	YellowOn bool
	// RedBlinks is the number of red lamp blinks identifying the protocol.
	RedBlinks int
}

// patterns maps each mode to its idle indicator presentation.
var patterns = map[Mode]IndicatorPattern{
	ModeAppendixS:             {YellowOn: false, RedBlinks: 1},
	ModeAppendixSRolling:      {YellowOn: true, RedBlinks: 1},
	ModePursuit:               {YellowOn: true, RedBlinks: 2},
	ModeRuleTwoSix:            {YellowOn: false, RedBlinks: 3},
	ModeRuleTwoSixRolling:     {YellowOn: true, RedBlinks: 3},
	ModeRuleTwoNineTwo:        {YellowOn: false, RedBlinks: 4},
	ModeRuleTwoNineTwoRolling: {YellowOn: true, RedBlinks: 4},
}

// Pattern returns the idle indicator presentation for the mode.
func (m Mode) Pattern() IndicatorPattern {
	return patterns[m]
}
