// Package ui renders the features in a tabbed fyne window.
//
// Every listener registered here runs on the fyne goroutine: action methods
// are invoked from button handlers and loop callbacks are posted through
// Dispatcher, so widgets are updated without further synchronization.
package ui
