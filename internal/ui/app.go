package ui

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/common"
	"github.com/oshokin/alarm-clock/internal/service/shell"
	"github.com/oshokin/alarm-clock/internal/service/sound"
	"github.com/oshokin/alarm-clock/internal/version"
)

// Window is the main application window with its features.
type Window struct {
	window fyne.Window
	shell  *shell.Shell
	view   *View
}

// NewWindow creates the main window on app. Nothing runs until Show.
func NewWindow(ctx context.Context, app fyne.App, cfg *config.Config) (*Window, error) {
	window := app.NewWindow(version.Title())
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	s, err := shell.New(&shell.Options{
		Config: cfg,
		Deps: common.Deps{
			Dispatcher: Dispatcher{},
			Notifier:   NewNotifier(ctx, app, window, sound.Play, os.Stdout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build features: %w", err)
	}

	w := &Window{
		window: window,
		shell:  s,
		view:   NewView(ctx, s),
	}

	window.SetContent(w.view.Content())
	window.SetOnClosed(func() {
		logger.Debug(ctx, "Window closed, stopping features")
		s.Close(ctx)
	})

	return w, nil
}

// Show starts the world clocks and displays the window.
func (w *Window) Show(ctx context.Context) {
	w.shell.WorldClock.Run(ctx)
	w.window.Show()
}

// Run shows the main window and blocks in the fyne event loop until the
// application quits.
func Run(ctx context.Context, app fyne.App, cfg *config.Config) error {
	w, err := NewWindow(ctx, app, cfg)
	if err != nil {
		return err
	}

	w.Show(ctx)
	app.Run()

	return nil
}
