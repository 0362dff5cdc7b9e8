package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/service/console"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// rearm keeps the session alive after the alarm, asking for the next time.
	rearm bool

	// rootCmd represents the interactive alarm clock.
	rootCmd = &cobra.Command{
		Use:   "alarm-clock [HH:MM:SS]",
		Short: "Ring once at a time of day.",
		Long: `Console alarm clock.

Asks for an alarm time in HH:MM:SS format until a valid one is entered,
then checks the clock every second and prints a banner when the current
time matches the target exactly. Press Enter to exit at any time.

The time can be passed as an argument to skip the first prompt.
Tick interval, log level and notification sinks are read from the settings
file when it exists.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var initialTime string
			if len(args) > 0 {
				initialTime = args[0]
			}

			options := &console.Options{
				ConfigPath:     configPath,
				ConfigRequired: cmd.Flags().Changed("config"),
				InitialTime:    initialTime,
				Rearm:          rearm,
				In:             cmd.InOrStdin(),
				Out:            cmd.OutOrStdout(),
			}

			return console.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-clock CLI and exits with non-zero status on error.
func Execute() {
	rootCmd.AddCommand(version.NewCommand(), newInitConfigCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVar(&rearm, "rearm", false, "ask for a new alarm time after each alarm (Ctrl+D or Ctrl+C to quit)")
}
