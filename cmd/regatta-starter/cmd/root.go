package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/regatta-starter/internal/config"
	"github.com/oshokin/regatta-starter/internal/service/starter"
	"github.com/oshokin/regatta-starter/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// modeOverride replaces the persisted mode selection; negative keeps it.
	modeOverride int
	// simulate replaces GPIO output lines with colored console output.
	simulate bool
	// startNow runs the selected sequence immediately and exits.
	startNow bool

	// rootCmd represents the base command for running the starting-signal controller.
	rootCmd = &cobra.Command{
		Use:   "regatta-starter",
		Short: "Run the sailing-race starting-signal controller.",
		Long: `Runs the starting-signal controller that drives the claxon, beeper and
indicator lamps for sailing-race starts.

While idle, the controller watches the start and mode buttons: a qualified
mode press advances through the seven signal programs, a qualified start
press runs the selected program to completion. The mode selection is
persisted to a JSON file and survives restarts.

With --simulate the output lines print to the console instead of driving
GPIO, which allows running without hardware. With --now the selected
sequence runs immediately without waiting for a button press.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &starter.Options{
				ConfigPath:   configPath,
				ModeOverride: modeOverride,
				Simulate:     simulate,
				StartNow:     startNow,
			}

			return starter.Run(ctx, options)
		},
	}
)

// Execute runs the regatta-starter CLI and exits with non-zero status on error.
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
	rootCmd.Flags().IntVarP(&modeOverride, "mode", "m", -1, "select this mode instead of the persisted one")
	rootCmd.Flags().BoolVar(&simulate, "simulate", false, "print output lines to the console instead of driving GPIO")
	rootCmd.Flags().BoolVar(&startNow, "now", false, "run the selected sequence immediately and exit")
}
