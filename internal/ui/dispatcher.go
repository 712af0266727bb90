package ui

import "fyne.io/fyne/v2"

// Dispatcher posts callbacks to the fyne goroutine.
type Dispatcher struct{}

// Post schedules fn with fyne.Do and returns immediately.
func (Dispatcher) Post(fn func()) {
	fyne.Do(fn)
}
