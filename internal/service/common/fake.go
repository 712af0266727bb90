//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"sync"
)

// Message is an informational message recorded by FakeNotifier.
type Message struct {
	Title string
	Text  string
}

// FakeNotifier records notifications for test assertions.
type FakeNotifier struct {
	mu     sync.Mutex
	alerts int
	infos  []Message
	errs   []error
}

// NewFakeNotifier creates an empty FakeNotifier.
func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

// PlayAlert counts the alert.
func (f *FakeNotifier) PlayAlert(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.alerts++
}

// ShowInfo records the message.
func (f *FakeNotifier) ShowInfo(title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.infos = append(f.infos, Message{Title: title, Text: message})
}

// ShowError records the error.
func (f *FakeNotifier) ShowError(_ string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errs = append(f.errs, err)
}

// Alerts returns the number of alerts played.
func (f *FakeNotifier) Alerts() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.alerts
}

// Infos returns a copy of the recorded messages.
func (f *FakeNotifier) Infos() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Message(nil), f.infos...)
}

// Errors returns a copy of the recorded errors.
func (f *FakeNotifier) Errors() []error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]error(nil), f.errs...)
}

// FakeDispatcher queues callbacks until the test drains them, which lets a
// test interleave user actions with ticks that are already in flight.
type FakeDispatcher struct {
	mu    sync.Mutex
	tasks []func()
}

// NewFakeDispatcher creates an empty FakeDispatcher.
func NewFakeDispatcher() *FakeDispatcher {
	return &FakeDispatcher{}
}

// Post queues fn.
func (f *FakeDispatcher) Post(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tasks = append(f.tasks, fn)
}

// Pending returns the number of queued callbacks.
func (f *FakeDispatcher) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.tasks)
}

// Drain runs queued callbacks, including ones they post, until none remain.
// It returns how many ran.
func (f *FakeDispatcher) Drain() int {
	ran := 0

	for {
		f.mu.Lock()
		if len(f.tasks) == 0 {
			f.mu.Unlock()

			return ran
		}

		fn := f.tasks[0]
		f.tasks = f.tasks[1:]
		f.mu.Unlock()

		fn()
		ran++
	}
}
