package cmd

import (
	"context"
	"sync"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/alarm"
	"github.com/oshokin/alarm-clock/internal/service/shell"
)

// alarmCmd arms the alarm in the terminal and waits for it.
var alarmCmd = &cobra.Command{
	Use:   "alarm HH:MM:SS",
	Short: "Wait in the terminal until the local time of day reaches HH:MM:SS.",
	Long: `Arms the alarm and blocks until it goes off, then plays the alert tone and exits.

A time already passed today fires immediately. Press Ctrl+C to cancel.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHeadless(cmd, "alarm", func(ctx context.Context, s *shell.Shell) error {
			return waitForAlarm(ctx, s.Alarm, args[0])
		})
	},
}

// waitForAlarm arms a and returns once it triggers.
func waitForAlarm(ctx context.Context, a *alarm.Alarm, input string) error {
	var once sync.Once

	triggered := make(chan struct{})

	a.OnChange(func(s alarm.Snapshot) {
		switch s.State {
		case alarm.StateArmed:
			logger.InfoKV(ctx, "Waiting for alarm", "target", s.Target.String())
		case alarm.StateTriggered:
			once.Do(func() { close(triggered) })
		case alarm.StateIdle:
		}
	})

	if err := a.Set(ctx, input); err != nil {
		return err
	}

	return waitFor(ctx, triggered)
}
