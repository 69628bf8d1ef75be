package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ConsoleLine renders line transitions to a terminal for simulation runs.
// Each transition prints as a colored label so an operator can follow a
// sequence without hardware attached.
type ConsoleLine struct {
	// label names the physical line, e.g. "CLAXON".
	label string
	// on is the color used for active transitions.
	on *color.Color
	// out receives the rendered transitions.
	out io.Writer
}

// NewConsoleLine returns a console line with the provided label and color
// attributes for the active state.
func NewConsoleLine(label string, attrs ...color.Attribute) *ConsoleLine {
	return &ConsoleLine{
		label: label,
		on:    color.New(attrs...).Add(color.Bold),
		out:   os.Stdout,
	}
}

// WithWriter redirects the rendered transitions, used by tests.
func (l *ConsoleLine) WithWriter(w io.Writer) *ConsoleLine {
	l.out = w

	return l
}

// Set renders the transition.
func (l *ConsoleLine) Set(active bool) {
	if active {
		_, _ = l.on.Fprintf(l.out, "%-8s ON\n", l.label)

		return
	}

	_, _ = fmt.Fprintf(l.out, "%-8s off\n", l.label)
}
