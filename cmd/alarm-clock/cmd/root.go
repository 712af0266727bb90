package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/shell"
	"github.com/oshokin/alarm-clock/internal/ui"
	"github.com/oshokin/alarm-clock/internal/version"
)

// appID identifies the application to the desktop for preferences and notifications.
const appID = "io.github.oshokin.alarm-clock"

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides log_level from the configuration file when set.
	logLevel string

	// rootCmd opens the tabbed window.
	rootCmd = &cobra.Command{
		Use:   "alarm-clock",
		Short: "Alarm, timer, stopwatch and world clocks in one window.",
		Long: `Opens a window with four tabs: Alarm, Timer, Stopwatch and World Clocks.

The alarm fires once the local time of day reaches HH:MM:SS.
The timer counts down whole seconds and records its completion time.
World clock zones, the refresh interval and the window size come from the configuration file.
Use the subcommands to run the alarm, the timer or the world clocks in a terminal instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			ctx = logger.WithName(ctx, "alarm-clock")

			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			shell.WarnIfAlreadyRunning(ctx)

			a := app.NewWithID(appID)

			// Closing the window or a signal ends the event loop.
			go func() {
				<-ctx.Done()
				a.Quit()
			}()

			logger.InfoKV(ctx, "Starting", "version", version.Short(), "zones", len(settings.Zones))

			return ui.Run(ctx, a, settings)
		},
	}
)

// Execute runs the alarm-clock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(context.Background(), err)
		os.Exit(1)
	}
}

// loadSettings reads the configuration and applies the log level, the flag
// taking precedence over the file.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	level := settings.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}

	parsed, ok := logger.ParseLogLevel(level)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	logger.SetLevel(parsed)

	return settings, nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&logLevel, "log-level", "l", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(alarmCmd, timerCmd, clocksCmd, historyCmd)
}
