package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/stopwatch"
)

type stopwatchTab struct {
	ctx       context.Context //nolint:containedctx // Button handlers have no context of their own.
	stopwatch *stopwatch.Stopwatch

	display *widget.Label
	start   *widget.Button
	stop    *widget.Button
	reset   *widget.Button
	content fyne.CanvasObject
}

func newStopwatchTab(ctx context.Context, sw *stopwatch.Stopwatch) *stopwatchTab {
	t := &stopwatchTab{
		ctx:       logger.WithName(ctx, "stopwatch-tab"),
		stopwatch: sw,
		display:   widget.NewLabel(""),
	}

	t.display.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	t.start = widget.NewButton("Start", t.onStart)
	t.stop = widget.NewButton("Stop", t.onStop)
	t.reset = widget.NewButton("Reset", t.onReset)

	t.content = container.NewVBox(
		widget.NewLabel("Stopwatch:"),
		t.display,
		container.NewHBox(t.start, t.stop, t.reset),
	)

	sw.OnChange(t.render)
	t.render(sw.Snapshot())

	return t
}

func (t *stopwatchTab) onStart() {
	if err := t.stopwatch.Start(t.ctx); err != nil {
		logger.DebugKV(t.ctx, "Start stopwatch rejected", "error", err)
	}
}

func (t *stopwatchTab) onStop() {
	if err := t.stopwatch.Stop(t.ctx); err != nil {
		logger.DebugKV(t.ctx, "Stop stopwatch rejected", "error", err)
	}
}

func (t *stopwatchTab) onReset() {
	t.stopwatch.Reset(t.ctx)
}

func (t *stopwatchTab) render(s stopwatch.Snapshot) {
	t.display.SetText(s.Display)

	if s.Running() {
		t.start.Disable()
		t.stop.Enable()

		return
	}

	t.start.Enable()
	t.stop.Disable()
}
