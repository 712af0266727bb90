package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/oshokin/alarm-clock/internal/service/worldclock"
)

type worldClockTab struct {
	// values holds one label per zone, in zone order.
	values  []*widget.Label
	content fyne.CanvasObject
}

func newWorldClockTab(w *worldclock.WorldClock) *worldClockTab {
	zones := w.Zones()
	t := &worldClockTab{values: make([]*widget.Label, len(zones))}

	box := container.NewVBox()

	for i, z := range zones {
		t.values[i] = widget.NewLabel("")
		t.values[i].TextStyle = fyne.TextStyle{Monospace: true}

		box.Add(widget.NewLabel(z.Label + " Time:"))
		box.Add(t.values[i])
	}

	t.content = box

	w.OnChange(t.render)
	t.render(w.Readings())

	return t
}

func (t *worldClockTab) render(readings []worldclock.Reading) {
	for i, r := range readings {
		if i >= len(t.values) {
			return
		}

		t.values[i].SetText(r.Text)
	}
}
