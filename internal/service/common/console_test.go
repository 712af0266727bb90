//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/alarm-clock/internal/logger"
)

var (
	errNoSpeaker = errors.New("no speaker")
	errClosed    = errors.New("terminal closed")
)

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errClosed
}

// TestConsole_PlayAlert checks the bell fallback.
func TestConsole_PlayAlert(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	ok := NewConsole(context.Background(), &out, func(context.Context) error { return nil })
	ok.PlayAlert(context.Background())
	require.Empty(t, out.String())

	failing := NewConsole(context.Background(), &out, func(context.Context) error { return errNoSpeaker })
	failing.PlayAlert(context.Background())
	require.Equal(t, "\a", out.String())

	out.Reset()
	NewConsole(context.Background(), &out, nil).PlayAlert(context.Background())
	require.Equal(t, "\a", out.String())
}

// TestConsole_PlayAlertLogsBellFailure reports a bell that cannot be written.
func TestConsole_PlayAlertLogsBellFailure(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	ctx := logger.ToContext(context.Background(), logger.NewWithWriter(&logs, zapcore.DebugLevel))

	NewConsole(ctx, failingWriter{}, nil).PlayAlert(context.Background())

	require.Contains(t, logs.String(), "Unable to ring bell")
	require.Contains(t, logs.String(), "terminal closed")
}

// TestConsole_Dialogs checks that info and error messages reach the log stream.
func TestConsole_Dialogs(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	ctx := logger.ToContext(context.Background(), logger.NewWithWriter(&logs, zapcore.DebugLevel))
	c := NewConsole(ctx, &bytes.Buffer{}, nil)

	c.ShowInfo("Timer", "Timer completed!")
	c.ShowError("Error", errNoSpeaker)

	require.Contains(t, logs.String(), "Timer completed!")
	require.Contains(t, logs.String(), "no speaker")
}
