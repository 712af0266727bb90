//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"errors"
	"time"

	"github.com/oshokin/alarm-clock/internal/clock"
)

// DefaultInterval is the update cadence of every feature loop.
const DefaultInterval = time.Second

var (
	// errDispatcherRequired is returned when a feature is built without a Dispatcher.
	errDispatcherRequired = errors.New("dispatcher must be provided")
	// errNotifierRequired is returned when a feature is built without a Notifier.
	errNotifierRequired = errors.New("notifier must be provided")
)

// Deps are the collaborators every feature is built from.
type Deps struct {
	// Clock defaults to clock.Real.
	Clock clock.Clock
	// Dispatcher runs loop callbacks on the UI goroutine.
	Dispatcher Dispatcher
	// Notifier presents alerts, information and errors.
	Notifier Notifier
	// Interval defaults to DefaultInterval.
	Interval time.Duration
}

// Normalize fills defaults and rejects missing collaborators.
func (d Deps) Normalize() (Deps, error) {
	if d.Dispatcher == nil {
		return Deps{}, errDispatcherRequired
	}

	if d.Notifier == nil {
		return Deps{}, errNotifierRequired
	}

	if d.Clock == nil {
		d.Clock = clock.Real()
	}

	if d.Interval <= 0 {
		d.Interval = DefaultInterval
	}

	return d, nil
}
