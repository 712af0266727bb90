//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// bell is the ASCII BEL control character.
const bell = "\a"

// Console is a Notifier for terminal mode: messages go to the log stream and
// the alert is played by Alert, falling back to a terminal bell on w.
type Console struct {
	// ctx carries the scoped logger.
	ctx context.Context //nolint:containedctx // Notifier methods have no context of their own.
	// out receives the fallback bell.
	out io.Writer
	// alert plays the platform tone; nil means bell only.
	alert func(ctx context.Context) error
}

// NewConsole creates a Console writing bells to out and playing tones through alert.
func NewConsole(ctx context.Context, out io.Writer, alert func(ctx context.Context) error) *Console {
	return &Console{
		ctx:   logger.WithName(ctx, "console"),
		out:   out,
		alert: alert,
	}
}

// PlayAlert plays the tone, or rings the terminal bell when that fails.
func (c *Console) PlayAlert(ctx context.Context) {
	if c.alert != nil {
		err := c.alert(ctx)
		if err == nil {
			return
		}

		logger.DebugKV(c.ctx, "Alert tone unavailable, ringing bell", "error", err)
	}

	if _, err := fmt.Fprint(c.out, bell); err != nil {
		logger.WarnKV(c.ctx, "Unable to ring bell", "error", err)
	}
}

// ShowInfo logs the message at info level.
func (c *Console) ShowInfo(title, message string) {
	logger.InfoKV(c.ctx, message, "title", title)
}

// ShowError logs the failure at error level.
func (c *Console) ShowError(title string, err error) {
	logger.ErrorKV(c.ctx, title, "error", err)
}
