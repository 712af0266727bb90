//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import "sync"

// Listeners is a set of change callbacks for values of type T.
// The zero value is ready to use.
type Listeners[T any] struct {
	mu  sync.Mutex
	fns []func(T)
}

// Add registers fn.
func (l *Listeners[T]) Add(fn func(T)) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.fns = append(l.fns, fn)
}

// Notify calls every registered callback with v, in registration order.
// Callbacks run outside the lock and may register further listeners.
func (l *Listeners[T]) Notify(v T) {
	l.mu.Lock()
	fns := make([]func(T), len(l.fns))
	copy(fns, l.fns)
	l.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
