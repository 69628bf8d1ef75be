package starter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"

	"github.com/oshokin/regatta-starter/internal/clock"
	"github.com/oshokin/regatta-starter/internal/config"
	race "github.com/oshokin/regatta-starter/internal/domain/race"
	"github.com/oshokin/regatta-starter/internal/indicator"
	"github.com/oshokin/regatta-starter/internal/logger"
	"github.com/oshokin/regatta-starter/internal/metrics"
	"github.com/oshokin/regatta-starter/internal/output"
	repository "github.com/oshokin/regatta-starter/internal/repository/mode"
	"github.com/oshokin/regatta-starter/internal/selector"
	"github.com/oshokin/regatta-starter/internal/sequence"
	"github.com/oshokin/regatta-starter/internal/trigger"
)

// Options controls the regatta-starter process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ModeOverride forces a starting mode instead of the persisted one.
	// Negative keeps the persisted selection.
	ModeOverride int
	// Simulate renders outputs on the console instead of GPIO pins.
	Simulate bool
	// StartNow fires one run immediately instead of awaiting the start trigger.
	StartNow bool
}

// ErrNoStartButton indicates no start trigger pin is configured.
var ErrNoStartButton = errors.New("no start button pin configured")

// metricsShutdownTimeout bounds the metrics listener shutdown on exit.
const metricsShutdownTimeout = 5 * time.Second

// Run wires the controller and blocks until the context is canceled.
// A sequence in flight always completes before Run returns.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "regatta-starter")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if lvl, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(lvl)
	}

	m := metrics.New()
	if cfg.MetricsAddress != "" {
		serveMetrics(ctx, cfg.MetricsAddress, m)
	}

	horn, beeper, yellow, red := buildLines(cfg, opts.Simulate)

	sysClock := clock.System{}

	signalClock := sequence.NewSignalClock(sysClock)
	signalClock.OnOverrun(func(nominal, elapsed time.Duration) {
		logger.WarnKV(ctx, "Interval overrun, clamping wait to zero",
			"nominal", nominal, "elapsed", elapsed)
		m.TimingOverruns.Inc()
	})

	emitter := sequence.NewToneEmitter(sysClock, horn, beeper)
	emitter.OnEvent(func(ev race.SignalEvent) {
		m.SignalsEmitted.WithLabelValues(string(ev.Kind)).Inc()
	})

	ind := indicator.New(yellow, red, sysClock)
	runner := sequence.NewRunner(signalClock, emitter, ind, cfg.Timings)

	sel := selector.New(ctx, repository.NewFileRepository(cfg.ModeFile))
	if opts.ModeOverride >= 0 {
		if err := sel.Select(ctx, race.Mode(opts.ModeOverride)); err != nil {
			return fmt.Errorf("mode %d: %w", opts.ModeOverride, err)
		}
	}

	c := &controller{
		selector:     sel,
		display:      ind,
		orchestrator: sequence.NewOrchestrator(runner),
		metrics:      m,
	}

	logger.InfoKV(ctx, "Controller ready",
		"mode", sel.Current().String(), "simulate", opts.Simulate)

	if opts.StartNow {
		c.runSequence(ctx)

		return nil
	}

	if cfg.Pins.StartButton == "" {
		return ErrNoStartButton
	}

	startButton := trigger.NewButton(
		trigger.NewSysfsInput(cfg.Pins.StartButton, false),
		sysClock, cfg.PollInterval, cfg.HoldDuration)
	startButton.OnBounce(m.TriggerBounces.Inc)

	modeButton := trigger.NewButton(
		trigger.NewSysfsInput(cfg.Pins.ModeButton, false),
		sysClock, cfg.PollInterval, cfg.HoldDuration)
	modeButton.OnBounce(m.TriggerBounces.Inc)

	c.watcher = trigger.NewWatcher(startButton, modeButton, sysClock, cfg.PollInterval)

	if err := c.loop(ctx); !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info(ctx, "Controller stopped")

	return nil
}

// buildLines returns the four output lines, console-rendered in simulation.
func buildLines(cfg *config.Config, simulate bool) (horn, beeper, yellow, red output.Line) {
	if simulate {
		return output.NewConsoleLine("CLAXON", color.FgRed),
			output.NewConsoleLine("BEEPER", color.FgCyan),
			output.NewConsoleLine("YELLOW", color.FgYellow),
			output.NewConsoleLine("RED", color.FgHiRed)
	}

	return sysfsOrNop(cfg.Pins.Horn),
		sysfsOrNop(cfg.Pins.Beeper),
		sysfsOrNop(cfg.Pins.Yellow),
		sysfsOrNop(cfg.Pins.Red)
}

// sysfsOrNop returns a GPIO line, or a discard line for unwired outputs.
func sysfsOrNop(path string) output.Line {
	if path == "" {
		return output.Nop{}
	}

	return output.NewSysfsLine(path, false)
}

// serveMetrics exposes the Prometheus endpoint until the context is canceled.
// Scrapes run off the sequencing thread and cannot disturb signal timing.
func serveMetrics(ctx context.Context, addr string, m *metrics.Metrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsShutdownTimeout,
	}

	go func() {
		logger.InfoKV(ctx, "Metrics listening", "address", addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorKV(ctx, "Metrics listener failed", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()
}
