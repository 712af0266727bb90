package ui

import (
	"context"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// bell is the ASCII BEL control character.
const bell = "\a"

// Notifier shows dialogs on a window and plays the alert tone.
type Notifier struct {
	// ctx carries the scoped logger.
	ctx    context.Context //nolint:containedctx // Notifier methods have no context of their own.
	app    fyne.App
	window fyne.Window
	// alert plays the platform tone; nil means bell only.
	alert func(ctx context.Context) error
	// out receives the fallback bell.
	out io.Writer
}

// NewNotifier creates a Notifier for window.
func NewNotifier(
	ctx context.Context,
	app fyne.App,
	window fyne.Window,
	alert func(ctx context.Context) error,
	out io.Writer,
) *Notifier {
	return &Notifier{
		ctx:    logger.WithName(ctx, "notifier"),
		app:    app,
		window: window,
		alert:  alert,
		out:    out,
	}
}

// PlayAlert plays the tone in the background so the UI keeps responding.
func (n *Notifier) PlayAlert(ctx context.Context) {
	go func() {
		if n.alert != nil {
			err := n.alert(ctx)
			if err == nil {
				return
			}

			logger.DebugKV(n.ctx, "Alert tone unavailable, ringing bell", "error", err)
		}

		if _, err := fmt.Fprint(n.out, bell); err != nil {
			logger.WarnKV(n.ctx, "Unable to ring bell", "error", err)
		}
	}()
}

// ShowInfo opens an information dialog and sends a desktop notification,
// which is visible when the window is minimized.
func (n *Notifier) ShowInfo(title, message string) {
	logger.InfoKV(n.ctx, message, "title", title)

	n.app.SendNotification(fyne.NewNotification(title, message))
	dialog.ShowInformation(title, message, n.window)
}

// ShowError opens an error dialog.
func (n *Notifier) ShowError(title string, err error) {
	logger.DebugKV(n.ctx, title, "error", err)

	dialog.ShowError(err, n.window)
}
