package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/timer"
)

type timerTab struct {
	ctx   context.Context //nolint:containedctx // Button handlers have no context of their own.
	timer *timer.Timer

	entry     *widget.Entry
	remaining *widget.Label
	start     *widget.Button
	cancel    *widget.Button
	content   fyne.CanvasObject
}

func newTimerTab(ctx context.Context, tm *timer.Timer) *timerTab {
	t := &timerTab{
		ctx:       logger.WithName(ctx, "timer-tab"),
		timer:     tm,
		entry:     widget.NewEntry(),
		remaining: widget.NewLabel(""),
	}

	t.entry.SetPlaceHolder("Seconds")
	t.start = widget.NewButton("Start Timer", t.onStart)
	t.start.Importance = widget.HighImportance
	t.cancel = widget.NewButton("Cancel", t.onCancel)

	t.content = container.NewVBox(
		widget.NewLabel("Set timer (in seconds):"),
		t.entry,
		container.NewHBox(t.start, t.cancel),
		t.remaining,
	)

	tm.OnChange(t.render)
	t.render(tm.Snapshot())

	return t
}

func (t *timerTab) onStart() {
	if err := t.timer.Start(t.ctx, t.entry.Text); err != nil {
		logger.DebugKV(t.ctx, "Start timer rejected", "error", err)
	}
}

func (t *timerTab) onCancel() {
	if err := t.timer.Cancel(t.ctx); err != nil {
		logger.DebugKV(t.ctx, "Cancel timer rejected", "error", err)
	}
}

func (t *timerTab) render(s timer.Snapshot) {
	t.remaining.SetText(timerStatus(s))

	if s.State == timer.StateRunning {
		t.start.Disable()
		t.cancel.Enable()

		return
	}

	t.start.Enable()
	t.cancel.Disable()
}

func timerStatus(s timer.Snapshot) string {
	switch s.State {
	case timer.StateRunning:
		return fmt.Sprintf("Remaining: %d s", s.Remaining)
	case timer.StateCompleted:
		return "Timer completed"
	case timer.StateCancelled:
		return "Timer cancelled"
	default:
		return ""
	}
}
