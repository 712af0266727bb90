package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/service/shell"
	"github.com/oshokin/alarm-clock/internal/service/timer"
)

// timerCmd counts down in the terminal.
var timerCmd = &cobra.Command{
	Use:   "timer SECONDS",
	Short: "Count down SECONDS in the terminal, then play the alert tone.",
	Long: `Starts the countdown, prints the remaining seconds on every tick and exits on completion.

The completion time is logged and appended to exit_log_file when one is configured. Press Ctrl+C to cancel.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, "timer", func(ctx context.Context, s *shell.Shell) error {
			return waitForTimer(ctx, s.Timer, args[0], cmd.OutOrStdout())
		})
	},
}

// waitForTimer starts t and returns once it completes, writing the
// remaining seconds to out.
func waitForTimer(ctx context.Context, t *timer.Timer, input string, out io.Writer) error {
	var once sync.Once

	completed := make(chan struct{})

	t.OnChange(func(s timer.Snapshot) {
		switch s.State {
		case timer.StateRunning:
			_, _ = fmt.Fprintf(out, "Remaining: %d s\n", s.Remaining)
		case timer.StateCompleted:
			once.Do(func() { close(completed) })
		case timer.StateIdle, timer.StateCancelled:
		}
	})

	if err := t.Start(ctx, input); err != nil {
		return err
	}

	return waitFor(ctx, completed)
}
