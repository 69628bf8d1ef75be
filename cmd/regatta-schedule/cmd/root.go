package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/regatta-starter/internal/config"
	"github.com/oshokin/regatta-starter/internal/service/schedule"
	"github.com/oshokin/regatta-starter/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// rolling additionally renders one rolling re-entry.
	rolling bool

	// rootCmd represents the base command for rendering a signal timeline.
	rootCmd = &cobra.Command{
		Use:   "regatta-schedule <mode>",
		Short: "Print the nominal signal timeline of a mode.",
		Long: `Renders the selected mode's signal program against a virtual clock and
prints every claxon, beep cue and indicator transition with its nominal
offset. No hardware is required and no real time passes.

Tone durations come from the configuration file, so the printed timeline
matches what the controller would emit with the same settings. With
--rolling one rolling re-entry is rendered after the first pass, showing
the cadence of consecutive starts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			mode, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mode must be a number: %w", err)
			}

			options := &schedule.Options{
				ConfigPath: configPath,
				Mode:       mode,
				Rolling:    rolling,
			}

			return schedule.Run(ctx, options)
		},
	}
)

// Execute runs the regatta-schedule CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVar(&rolling, "rolling", false, "render one rolling re-entry after the first pass")
}
