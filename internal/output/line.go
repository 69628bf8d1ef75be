package output

// Line is a binary physical output: a claxon relay, beeper or indicator lamp.
//
// Set never fails and never blocks. Correctness failures on a real device
// manifest as mistimed or missing physical signals, never as an error the
// sequence engine could observe; a running sequence must not be abortable by
// an output fault.
type Line interface {
	Set(active bool)
}

// Nop is a Line that discards every transition.
type Nop struct{}

// Set implements Line.
func (Nop) Set(bool) {}
