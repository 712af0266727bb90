package alarm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/alarm-clock/internal/domain/chrono"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/schedule"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// State is the alarm lifecycle state.
type State int

const (
	// StateIdle means no alarm is set.
	StateIdle State = iota
	// StateArmed means the alarm is waiting for its target time.
	StateArmed
	// StateTriggered means the alarm went off; it can be set again.
	StateTriggered
)

// String returns a lowercase state name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateTriggered:
		return "triggered"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Snapshot is the observable alarm state.
type Snapshot struct {
	State State
	// Target is set only while State is StateArmed.
	Target chrono.TimeOfDay
}

const (
	errorTitle       = "Error"
	triggeredTitle   = "Alarm"
	triggeredMessage = "Time to wake up!"
)

var (
	// ErrAlreadyArmed is returned by Set while the alarm is armed.
	ErrAlreadyArmed = errors.New("alarm is already armed")
	// ErrNotArmed is returned by Deactivate when nothing is armed.
	ErrNotArmed = errors.New("alarm is not armed")
)

// Alarm polls the clock once per interval and fires when the target
// time-of-day is reached.
type Alarm struct {
	deps common.Deps

	// mu protects the fields below.
	mu     sync.Mutex
	state  State
	target chrono.TimeOfDay
	loop   *schedule.Loop
	// generation identifies the current arming; ticks of older armings are ignored.
	generation uint64

	listeners common.Listeners[Snapshot]
}

// New creates an idle Alarm.
func New(deps common.Deps) (*Alarm, error) {
	deps, err := deps.Normalize()
	if err != nil {
		return nil, fmt.Errorf("alarm: %w", err)
	}

	return &Alarm{deps: deps}, nil
}

// OnChange registers fn to receive every state change.
func (a *Alarm) OnChange(fn func(Snapshot)) {
	a.listeners.Add(fn)
}

// Snapshot returns the current state.
func (a *Alarm) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.snapshotLocked()
}

// Set parses input as HH:MM:SS and arms the alarm. Malformed input is shown
// as an error and leaves the state unchanged.
func (a *Alarm) Set(ctx context.Context, input string) error {
	ctx = logger.WithName(ctx, "alarm")

	target, err := chrono.ParseTimeOfDay(input)
	if err != nil {
		logger.DebugKV(ctx, "Rejected alarm time", "input", input, "error", err)
		a.deps.Notifier.ShowError(errorTitle, err)

		return err
	}

	a.mu.Lock()
	if a.state == StateArmed {
		a.mu.Unlock()

		return ErrAlreadyArmed
	}

	a.generation++
	generation := a.generation
	a.state = StateArmed
	a.target = target
	snapshot := a.snapshotLocked()
	a.mu.Unlock()

	logger.InfoKV(ctx, "Alarm armed", "target", target.String())
	a.listeners.Notify(snapshot)

	loop := schedule.Start(ctx, a.deps.Clock, a.deps.Interval, a.deps.Dispatcher,
		func(now time.Time) { a.check(ctx, generation, now) },
		schedule.WithImmediate())

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.generation != generation || a.state != StateArmed {
		loop.Stop()

		return nil
	}

	a.loop = loop

	return nil
}

// Deactivate disarms an armed alarm.
func (a *Alarm) Deactivate(ctx context.Context) error {
	ctx = logger.WithName(ctx, "alarm")

	a.mu.Lock()
	if a.state != StateArmed {
		a.mu.Unlock()

		return ErrNotArmed
	}

	a.generation++
	a.state = StateIdle
	a.target = chrono.TimeOfDay{}
	a.stopLocked()
	snapshot := a.snapshotLocked()
	a.mu.Unlock()

	logger.Info(ctx, "Alarm deactivated")
	a.listeners.Notify(snapshot)

	return nil
}

// check runs on the UI goroutine once per tick.
func (a *Alarm) check(ctx context.Context, generation uint64, now time.Time) {
	a.mu.Lock()
	if a.generation != generation || a.state != StateArmed {
		a.mu.Unlock()
		logger.Debug(ctx, "Ignoring tick of a disarmed alarm")

		return
	}

	if !a.target.ReachedBy(now) {
		a.mu.Unlock()

		return
	}

	target := a.target
	a.state = StateTriggered
	a.target = chrono.TimeOfDay{}
	a.stopLocked()
	snapshot := a.snapshotLocked()
	a.mu.Unlock()

	logger.InfoKV(ctx, "Alarm triggered", "target", target.String(), "now", now.Format(time.TimeOnly))

	a.deps.Notifier.PlayAlert(ctx)
	a.deps.Notifier.ShowInfo(triggeredTitle, triggeredMessage)
	a.listeners.Notify(snapshot)
}

// stopLocked stops the running loop, if any.
func (a *Alarm) stopLocked() {
	a.loop.Stop()
	a.loop = nil
}

// snapshotLocked copies the observable state.
func (a *Alarm) snapshotLocked() Snapshot {
	return Snapshot{State: a.state, Target: a.target}
}
