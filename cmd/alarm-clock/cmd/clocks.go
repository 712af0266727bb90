package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/service/shell"
	"github.com/oshokin/alarm-clock/internal/service/worldclock"
)

// watch keeps the world clocks refreshing until interrupted.
var watch bool

// clocksCmd prints the world clocks.
var clocksCmd = &cobra.Command{
	Use:   "clocks",
	Short: "Print the current time in every configured zone.",
	Long: `Prints one line per configured zone in YYYY-MM-DD HH:MM:SS format.

With --watch the lines are printed again on every tick until Ctrl+C.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runHeadless(cmd, "clocks", func(ctx context.Context, s *shell.Shell) error {
			out := cmd.OutOrStdout()

			if !watch {
				printReadings(out, s.WorldClock.Readings())

				return nil
			}

			s.WorldClock.OnChange(func(readings []worldclock.Reading) {
				printReadings(out, readings)
			})
			s.WorldClock.Run(ctx)

			<-ctx.Done()

			return ctx.Err()
		})
	},
}

// printReadings writes one "label: time" line per reading.
func printReadings(out io.Writer, readings []worldclock.Reading) {
	for _, r := range readings {
		_, _ = fmt.Fprintf(out, "%s: %s\n", r.Label, r.Text)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	clocksCmd.Flags().BoolVarP(&watch, "watch", "w", false, "refresh every tick until interrupted")
}
