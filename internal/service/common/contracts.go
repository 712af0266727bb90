//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import "context"

// Dispatcher runs callbacks on the UI goroutine.
// Post must not block and must preserve submission order.
type Dispatcher interface {
	Post(fn func())
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(fn func())

// Post calls f(fn).
func (f DispatcherFunc) Post(fn func()) {
	f(fn)
}

// Notifier presents feature outcomes to the user.
// All methods are called from the UI goroutine.
type Notifier interface {
	// PlayAlert plays the platform alert tone.
	PlayAlert(ctx context.Context)
	// ShowInfo presents an informational message.
	ShowInfo(title, message string)
	// ShowError presents a failed user action.
	ShowError(title string, err error)
}
