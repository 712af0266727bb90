package timer

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

// State is the timer lifecycle state.
type State int

const (
	// StateIdle means the timer has never been started.
	StateIdle State = iota
	// StateRunning means the countdown is in progress.
	StateRunning
	// StateCompleted means the countdown reached zero.
	StateCompleted
	// StateCancelled means the countdown was cancelled before reaching zero.
	StateCancelled
)

// String returns a lowercase state name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Snapshot is the observable timer state.
type Snapshot struct {
	State State
	// Remaining is the number of whole seconds left; zero unless running.
	Remaining int
}

// CompletionHook is told the completion instant. Its error is logged and
// otherwise ignored.
type CompletionHook func(ctx context.Context, at time.Time) error

const (
	errorTitle       = "Error"
	completedTitle   = "Timer"
	completedMessage = "Timer completed!"
)

var (
	// ErrAlreadyRunning is returned by Start during a countdown.
	ErrAlreadyRunning = errors.New("timer is already running")
	// ErrNotRunning is returned by Cancel when no countdown is in progress.
	ErrNotRunning = errors.New("timer is not running")
)

// Timer counts whole seconds down to zero, one per interval.
type Timer struct {
	deps common.Deps
	hook CompletionHook

	// mu protects the fields below.
	mu        sync.Mutex
	state     State
	remaining int
	loop      *schedule.Loop
	// generation identifies the current countdown; ticks of older ones are ignored.
	generation uint64

	listeners common.Listeners[Snapshot]
}

// New creates an idle Timer. hook may be nil.
func New(deps common.Deps, hook CompletionHook) (*Timer, error) {
	deps, err := deps.Normalize()
	if err != nil {
		return nil, fmt.Errorf("timer: %w", err)
	}

	return &Timer{deps: deps, hook: hook}, nil
}

// OnChange registers fn to receive every state change and countdown step.
func (t *Timer) OnChange(fn func(Snapshot)) {
	t.listeners.Add(fn)
}

// Snapshot returns the current state.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshotLocked()
}

// Start parses input as a number of seconds and begins the countdown.
// Invalid input is shown as an error and leaves the state unchanged.
func (t *Timer) Start(ctx context.Context, input string) error {
	ctx = logger.WithName(ctx, "timer")

	seconds, err := chrono.ParseSeconds(input)
	if err != nil {
		logger.DebugKV(ctx, "Rejected timer duration", "input", input, "error", err)
		t.deps.Notifier.ShowError(errorTitle, err)

		return err
	}

	t.mu.Lock()
	if t.state == StateRunning {
		t.mu.Unlock()

		return ErrAlreadyRunning
	}

	t.generation++
	generation := t.generation
	t.state = StateRunning
	t.remaining = seconds
	snapshot := t.snapshotLocked()
	t.mu.Unlock()

	logger.InfoKV(ctx, "Timer started", "seconds", seconds)
	t.listeners.Notify(snapshot)

	if seconds == 0 {
		t.deps.Dispatcher.Post(func() { t.complete(ctx, generation) })

		return nil
	}

	loop := schedule.Start(ctx, t.deps.Clock, t.deps.Interval, t.deps.Dispatcher,
		func(time.Time) { t.tick(ctx, generation) })

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.generation != generation || t.state != StateRunning {
		loop.Stop()

		return nil
	}

	t.loop = loop

	return nil
}

// Cancel stops a running countdown without firing completion.
func (t *Timer) Cancel(ctx context.Context) error {
	ctx = logger.WithName(ctx, "timer")

	t.mu.Lock()
	if t.state != StateRunning {
		t.mu.Unlock()

		return ErrNotRunning
	}

	t.generation++
	left := t.remaining
	t.state = StateCancelled
	t.remaining = 0
	t.stopLocked()
	snapshot := t.snapshotLocked()
	t.mu.Unlock()

	logger.InfoKV(ctx, "Timer cancelled", "remaining", left)
	t.listeners.Notify(snapshot)

	return nil
}

// tick runs on the UI goroutine once per interval.
func (t *Timer) tick(ctx context.Context, generation uint64) {
	t.mu.Lock()
	if t.generation != generation || t.state != StateRunning {
		t.mu.Unlock()
		logger.Debug(ctx, "Ignoring tick of a finished countdown")

		return
	}

	if t.remaining > 0 {
		t.remaining--
	}

	done := t.remaining == 0
	snapshot := t.snapshotLocked()
	t.mu.Unlock()

	if done {
		t.complete(ctx, generation)

		return
	}

	t.listeners.Notify(snapshot)
}

// complete fires the terminal outcome if generation is still current.
func (t *Timer) complete(ctx context.Context, generation uint64) {
	t.mu.Lock()
	if t.generation != generation || t.state != StateRunning {
		t.mu.Unlock()

		return
	}

	t.state = StateCompleted
	t.remaining = 0
	t.stopLocked()
	snapshot := t.snapshotLocked()
	t.mu.Unlock()

	logger.Info(ctx, "Timer completed")

	t.deps.Notifier.PlayAlert(ctx)
	t.deps.Notifier.ShowInfo(completedTitle, completedMessage)

	if t.hook != nil {
		if err := t.hook(ctx, t.deps.Clock.Now()); err != nil {
			logger.WarnKV(ctx, "Completion hook failed", "error", err)
		}
	}

	t.listeners.Notify(snapshot)
}

// stopLocked stops the running loop, if any.
func (t *Timer) stopLocked() {
	t.loop.Stop()
	t.loop = nil
}

// snapshotLocked copies the observable state.
func (t *Timer) snapshotLocked() Snapshot {
	return Snapshot{State: t.state, Remaining: t.remaining}
}
