package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the controller settings shared by the regatta binaries.
type Config struct {
	// ModeFile is the path to the JSON file storing the selected mode.
	ModeFile string `yaml:"mode_file"`
	// MetricsAddress is an optional listen address for the Prometheus endpoint.
	// Empty disables the endpoint entirely.
	MetricsAddress string `yaml:"metrics_addr"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// PollInterval is how often button inputs are sampled in the idle phase.
	PollInterval time.Duration `yaml:"poll_interval"`
	// HoldDuration is how long a button edge must persist to qualify.
	HoldDuration time.Duration `yaml:"hold_duration"`
	// Pins maps logical lines to sysfs GPIO value files.
	Pins Pins `yaml:"pins"`
	// Timings sets the nominal tone lengths used by the sequence programs.
	Timings Timings `yaml:"timings"`
}

// Pins lists the sysfs GPIO value file paths for every physical line.
// All paths may be left empty when the controller runs in simulation mode.
type Pins struct {
	// Horn drives the claxon relay.
	Horn string `yaml:"horn"`
	// Beeper drives the committee cue beeper.
	Beeper string `yaml:"beeper"`
	// Yellow drives the rolling-mode indicator lamp.
	Yellow string `yaml:"yellow"`
	// Red drives the final-minute indicator lamp.
	Red string `yaml:"red"`
	// StartButton is the start trigger input.
	StartButton string `yaml:"start_button"`
	// ModeButton is the mode-change input.
	ModeButton string `yaml:"mode_button"`
}

// Timings sets the nominal signal durations. The five count-down pulses in the
// final five seconds are fixed at one-second spacing and are not configurable.
type Timings struct {
	// LongTone is the claxon duration for warning and preparatory signals.
	LongTone time.Duration `yaml:"long_tone"`
	// ShortTone is the claxon duration for short cue signals.
	ShortTone time.Duration `yaml:"short_tone"`
	// ToneGap is the silence between consecutive claxon pulses.
	ToneGap time.Duration `yaml:"tone_gap"`
	// StartTone is the extended claxon duration for the start signal itself.
	StartTone time.Duration `yaml:"start_tone"`
}

const (
	// DefaultConfigFilename is the default filename for controller settings.
	DefaultConfigFilename = "regatta-starter-settings.yaml"

	// DefaultModeFilename is the default filename for the persisted mode index.
	DefaultModeFilename = "regatta-starter-mode.json"

	// DefaultPollInterval is the default button sampling interval.
	DefaultPollInterval = 10 * time.Millisecond

	// DefaultHoldDuration is the default edge persistence requirement.
	DefaultHoldDuration = 50 * time.Millisecond

	// DefaultLongTone is the default long claxon duration.
	DefaultLongTone = time.Second

	// DefaultShortTone is the default short claxon duration.
	DefaultShortTone = 500 * time.Millisecond

	// DefaultToneGap is the default silence between claxon pulses.
	DefaultToneGap = 500 * time.Millisecond

	// DefaultStartTone is the default extended start signal duration.
	DefaultStartTone = 2 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeDuration is returned when a duration field is negative.
	errNegativeDuration = errors.New("durations must not be negative")
)

// DefaultTimings returns the out-of-the-box signal durations.
func DefaultTimings() Timings {
	return Timings{
		LongTone:  DefaultLongTone,
		ShortTone: DefaultShortTone,
		ToneGap:   DefaultToneGap,
		StartTone: DefaultStartTone,
	}
}

// Default returns a configuration populated with every default value.
func Default() *Config {
	return &Config{
		ModeFile:     DefaultModeFilename,
		LogLevel:     "info",
		PollInterval: DefaultPollInterval,
		HoldDuration: DefaultHoldDuration,
		Timings:      DefaultTimings(),
	}
}

// Load reads configuration from the provided path and validates essential fields.
// A missing file yields the default configuration rather than an error, so the
// controller can run on a freshly imaged device with no settings present.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for unset fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	durations := []time.Duration{
		cfg.PollInterval, cfg.HoldDuration,
		cfg.Timings.LongTone, cfg.Timings.ShortTone,
		cfg.Timings.ToneGap, cfg.Timings.StartTone,
	}
	for _, d := range durations {
		if d < 0 {
			return errNegativeDuration
		}
	}

	if cfg.ModeFile == "" {
		cfg.ModeFile = DefaultModeFilename
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	if cfg.HoldDuration == 0 {
		cfg.HoldDuration = DefaultHoldDuration
	}

	defaults := DefaultTimings()
	if cfg.Timings.LongTone == 0 {
		cfg.Timings.LongTone = defaults.LongTone
	}

	if cfg.Timings.ShortTone == 0 {
		cfg.Timings.ShortTone = defaults.ShortTone
	}

	if cfg.Timings.ToneGap == 0 {
		cfg.Timings.ToneGap = defaults.ToneGap
	}

	if cfg.Timings.StartTone == 0 {
		cfg.Timings.StartTone = defaults.StartTone
	}

	if cfg.MetricsAddress == "" {
		return nil
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.MetricsAddress); err != nil {
		return fmt.Errorf("invalid metrics address: %w", err)
	}

	return nil
}
