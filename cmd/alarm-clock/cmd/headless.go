package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/common"
	"github.com/oshokin/alarm-clock/internal/service/shell"
	"github.com/oshokin/alarm-clock/internal/service/sound"
)

// runHeadless builds the features on a console notifier and runs body while
// the calling goroutine drains their callbacks. An interrupt ends body's
// context and is not an error.
func runHeadless(
	cmd *cobra.Command,
	name string,
	body func(ctx context.Context, s *shell.Shell) error,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ctx = logger.WithName(ctx, name)

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	s, q, err := newHeadlessShell(ctx, cmd, settings)
	if err != nil {
		return err
	}

	defer s.Close(ctx)

	err = shell.RunWithQueue(ctx, q, func(ctx context.Context) error {
		return body(ctx, s)
	})
	if ctx.Err() != nil {
		logger.Info(ctx, "Interrupted")

		return nil
	}

	return err
}

// newHeadlessShell builds a Shell dispatching to a Queue.
func newHeadlessShell(ctx context.Context, cmd *cobra.Command, settings *config.Config) (*shell.Shell, *common.Queue, error) {
	q := common.NewQueue()

	s, err := shell.New(&shell.Options{
		Config: settings,
		Deps: common.Deps{
			Dispatcher: q,
			Notifier:   common.NewConsole(ctx, cmd.OutOrStdout(), sound.Play),
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("build features: %w", err)
	}

	return s, q, nil
}

// waitFor blocks until done is closed or ctx ends.
func waitFor(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
