package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/domain/chrono"
	"github.com/oshokin/alarm-clock/internal/service/shell"
)

// historyCmd lists recorded timer completions.
var historyCmd = &cobra.Command{
	Use:           "history",
	Short:         "List the timer completion times recorded in exit_log_file.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runHeadless(cmd, "history", func(ctx context.Context, s *shell.Shell) error {
			times, err := s.ExitTimes(ctx)
			if err != nil {
				return fmt.Errorf("read exit log: %w", err)
			}

			out := cmd.OutOrStdout()

			if len(times) == 0 {
				_, _ = fmt.Fprintln(out, "No timer completions recorded.")

				return nil
			}

			for _, at := range times {
				_, _ = fmt.Fprintln(out, at.Local().Format(chrono.ZonedLayout))
			}

			return nil
		})
	},
}
