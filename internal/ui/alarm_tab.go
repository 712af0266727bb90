package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/alarm"
)

type alarmTab struct {
	ctx   context.Context //nolint:containedctx // Button handlers have no context of their own.
	alarm *alarm.Alarm

	entry      *widget.Entry
	status     *widget.Label
	set        *widget.Button
	deactivate *widget.Button
	content    fyne.CanvasObject
}

func newAlarmTab(ctx context.Context, a *alarm.Alarm) *alarmTab {
	t := &alarmTab{
		ctx:    logger.WithName(ctx, "alarm-tab"),
		alarm:  a,
		entry:  widget.NewEntry(),
		status: widget.NewLabel(""),
	}

	t.entry.SetPlaceHolder("HH:MM:SS")
	t.set = widget.NewButton("Set Alarm", t.onSet)
	t.set.Importance = widget.HighImportance
	t.deactivate = widget.NewButton("Deactivate", t.onDeactivate)

	t.content = container.NewVBox(
		widget.NewLabel("Enter alarm time (HH:MM:SS):"),
		t.entry,
		container.NewHBox(t.set, t.deactivate),
		t.status,
	)

	a.OnChange(t.render)
	t.render(a.Snapshot())

	return t
}

func (t *alarmTab) onSet() {
	// Parse errors are shown by the alarm itself.
	if err := t.alarm.Set(t.ctx, t.entry.Text); err != nil {
		logger.DebugKV(t.ctx, "Set alarm rejected", "error", err)
	}
}

func (t *alarmTab) onDeactivate() {
	if err := t.alarm.Deactivate(t.ctx); err != nil {
		logger.DebugKV(t.ctx, "Deactivate rejected", "error", err)
	}
}

func (t *alarmTab) render(s alarm.Snapshot) {
	t.status.SetText(alarmStatus(s))

	if s.State == alarm.StateArmed {
		t.set.Disable()
		t.deactivate.Enable()

		return
	}

	t.set.Enable()
	t.deactivate.Disable()
}

func alarmStatus(s alarm.Snapshot) string {
	switch s.State {
	case alarm.StateArmed:
		return "Alarm set for " + s.Target.String()
	case alarm.StateTriggered:
		return "Alarm went off"
	default:
		return "No alarm set"
	}
}
