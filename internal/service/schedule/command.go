package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/oshokin/regatta-starter/internal/clock"
	"github.com/oshokin/regatta-starter/internal/config"
	race "github.com/oshokin/regatta-starter/internal/domain/race"
	"github.com/oshokin/regatta-starter/internal/logger"
	"github.com/oshokin/regatta-starter/internal/sequence"
)

// Options configure a dry run of one signal program.
type Options struct {
	// ConfigPath locates the settings file; tone durations come from it.
	ConfigPath string
	// Mode is the mode number to render.
	Mode int
	// Rolling additionally renders one rolling re-entry after the first
	// pass, showing the cadence of consecutive starts.
	Rolling bool
	// Output receives the rendered timeline; os.Stdout when nil.
	Output io.Writer
}

// ErrInvalidMode is returned when the requested mode number is out of range.
var ErrInvalidMode = errors.New("mode out of range")

// Run executes the selected mode's program against a virtual clock and
// prints every signal with its nominal offset. No hardware is touched and
// no real time passes.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "regatta-schedule")

	if opts.Mode < 0 || !race.Mode(opts.Mode).Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, opts.Mode)
	}

	m := race.Mode(opts.Mode)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if lvl, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(lvl)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	virtual := clock.NewVirtual(time.Time{})
	recorder := sequence.NewRecorder(virtual)
	runner := sequence.NewRunner(sequence.NewSignalClock(virtual), recorder, recorder, cfg.Timings)

	program := runner.ProgramFor(m)
	program(false)

	if opts.Rolling {
		program(true)
	}

	logger.InfoKV(ctx, "Schedule rendered",
		"mode", m.String(),
		"rolling", opts.Rolling,
		"events", len(recorder.Events()))

	render(out, m, opts.Rolling, recorder.Events())

	return nil
}

// render prints the timeline, one event per line, colored the same way the
// console simulator colors its lines.
func render(out io.Writer, m race.Mode, rolling bool, events []sequence.TimedEvent) {
	header := m.String()
	if rolling {
		header += " (one rolling re-entry)"
	}

	fmt.Fprintf(out, "%s\n", header)

	claxon := color.New(color.FgRed)
	beep := color.New(color.FgCyan)
	lamp := color.New(color.FgYellow)

	for _, ev := range events {
		fmt.Fprintf(out, "%s  %s\n", formatOffset(ev.At), describe(ev.Event, claxon, beep, lamp))
	}
}

// describe renders one event as a colored, human-readable line.
func describe(ev race.SignalEvent, claxon, beep, lamp *color.Color) string {
	switch ev.Kind {
	case race.SignalClaxon:
		if ev.Silence == 0 {
			return claxon.Sprintf("CLAXON  %s start tone", ev.Tone)
		}

		return claxon.Sprintf("CLAXON  %s tone, %s gap", ev.Tone, ev.Silence)
	case race.SignalBeep:
		return beep.Sprintf("BEEP    %d pulses, %s on / %s off", ev.Count, ev.On, ev.Off)
	case race.SignalFinalMinute:
		state := "off"
		if ev.Lit {
			state = "ON"
		}

		return lamp.Sprintf("LAMP    final minute %s", state)
	default:
		return string(ev.Kind)
	}
}

// formatOffset renders an offset as mm:ss.mmm, minutes unbounded.
func formatOffset(d time.Duration) string {
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	millis := (d - seconds*time.Second) / time.Millisecond

	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
