package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/oshokin/alarm-clock/internal/service/shell"
)

// Tab titles in display order.
const (
	alarmTabTitle      = "Alarm"
	timerTabTitle      = "Timer"
	stopwatchTabTitle  = "Stopwatch"
	worldClockTabTitle = "World Clocks"
)

// View is the tabbed content of the main window.
type View struct {
	tabs *container.AppTabs

	alarm      *alarmTab
	timer      *timerTab
	stopwatch  *stopwatchTab
	worldClock *worldClockTab
}

// NewView builds one tab per feature and subscribes them to state changes.
func NewView(ctx context.Context, s *shell.Shell) *View {
	v := &View{
		alarm:      newAlarmTab(ctx, s.Alarm),
		timer:      newTimerTab(ctx, s.Timer),
		stopwatch:  newStopwatchTab(ctx, s.Stopwatch),
		worldClock: newWorldClockTab(s.WorldClock),
	}

	v.tabs = container.NewAppTabs(
		container.NewTabItem(alarmTabTitle, v.alarm.content),
		container.NewTabItem(timerTabTitle, v.timer.content),
		container.NewTabItem(stopwatchTabTitle, v.stopwatch.content),
		container.NewTabItem(worldClockTabTitle, v.worldClock.content),
	)

	return v
}

// Content returns the root object for the window.
func (v *View) Content() fyne.CanvasObject {
	return v.tabs
}
