package stopwatch

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

// State is the stopwatch state.
type State int

const (
	// StateReset means nothing has been measured.
	StateReset State = iota
	// StateRunning means time is being measured.
	StateRunning
	// StateStopped means measurement is paused and Display is frozen.
	StateStopped
)

// String returns a lowercase state name for logs.
func (s State) String() string {
	switch s {
	case StateReset:
		return "reset"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Snapshot is the observable stopwatch state.
type Snapshot struct {
	State State
	// Display is the last rendered elapsed time, H:MM:SS.
	Display string
}

// Running reports whether the stopwatch is measuring.
func (s Snapshot) Running() bool {
	return s.State == StateRunning
}

var (
	// ErrAlreadyRunning is returned by Start while running.
	ErrAlreadyRunning = errors.New("stopwatch is already running")
	// ErrNotRunning is returned by Stop while not running.
	ErrNotRunning = errors.New("stopwatch is not running")
)

// Stopwatch measures elapsed wall time.
type Stopwatch struct {
	deps common.Deps

	// mu protects the fields below.
	mu    sync.Mutex
	state State
	// startedAt is the start of the current run; zero unless running.
	startedAt time.Time
	// frozen is the elapsed time at the last Stop; zero unless stopped.
	frozen     time.Duration
	display    string
	loop       *schedule.Loop
	generation uint64

	listeners common.Listeners[Snapshot]
}

// New creates a reset Stopwatch.
func New(deps common.Deps) (*Stopwatch, error) {
	deps, err := deps.Normalize()
	if err != nil {
		return nil, fmt.Errorf("stopwatch: %w", err)
	}

	return &Stopwatch{
		deps:    deps,
		display: chrono.FormatElapsed(0),
	}, nil
}

// OnChange registers fn to receive every state change and refresh.
func (s *Stopwatch) OnChange(fn func(Snapshot)) {
	s.listeners.Add(fn)
}

// Snapshot returns the current state.
func (s *Stopwatch) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Elapsed returns the measured time as of now.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.elapsedLocked(s.deps.Clock.Now())
}

// Start measures from now, discarding any frozen value, and starts the
// refresh loop.
func (s *Stopwatch) Start(ctx context.Context) error {
	ctx = logger.WithName(ctx, "stopwatch")

	s.mu.Lock()
	if s.state == StateRunning {
		s.mu.Unlock()

		return ErrAlreadyRunning
	}

	s.generation++
	generation := s.generation
	s.state = StateRunning
	s.startedAt = s.deps.Clock.Now()
	s.frozen = 0
	s.display = chrono.FormatElapsed(0)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	logger.Info(ctx, "Stopwatch started")
	s.listeners.Notify(snapshot)

	loop := schedule.Start(ctx, s.deps.Clock, s.deps.Interval, s.deps.Dispatcher,
		func(now time.Time) { s.refresh(generation, now) },
		schedule.WithImmediate())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation || s.state != StateRunning {
		loop.Stop()

		return nil
	}

	s.loop = loop

	return nil
}

// Stop ends measuring and freezes the display.
func (s *Stopwatch) Stop(ctx context.Context) error {
	ctx = logger.WithName(ctx, "stopwatch")

	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()

		return ErrNotRunning
	}

	s.generation++
	s.frozen = s.elapsedLocked(s.deps.Clock.Now())
	s.startedAt = time.Time{}
	s.state = StateStopped
	s.display = chrono.FormatElapsed(s.frozen)
	s.stopLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	logger.InfoKV(ctx, "Stopwatch stopped", "elapsed", snapshot.Display)
	s.listeners.Notify(snapshot)

	return nil
}

// Reset clears the measurement from any state. Repeated calls are harmless.
func (s *Stopwatch) Reset(ctx context.Context) {
	ctx = logger.WithName(ctx, "stopwatch")

	s.mu.Lock()
	s.generation++
	s.state = StateReset
	s.startedAt = time.Time{}
	s.frozen = 0
	s.display = chrono.FormatElapsed(0)
	s.stopLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	logger.Debug(ctx, "Stopwatch reset")
	s.listeners.Notify(snapshot)
}

// refresh re-renders the display on the UI goroutine.
func (s *Stopwatch) refresh(generation uint64, now time.Time) {
	s.mu.Lock()
	if s.generation != generation || s.state != StateRunning {
		s.mu.Unlock()

		return
	}

	s.display = chrono.FormatElapsed(s.elapsedLocked(now))
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.listeners.Notify(snapshot)
}

// elapsedLocked returns the current run up to now, or the frozen value.
func (s *Stopwatch) elapsedLocked(now time.Time) time.Duration {
	if s.state != StateRunning {
		return s.frozen
	}

	return now.Sub(s.startedAt)
}

// stopLocked stops the refresh loop, if any.
func (s *Stopwatch) stopLocked() {
	s.loop.Stop()
	s.loop = nil
}

// snapshotLocked copies the observable state.
func (s *Stopwatch) snapshotLocked() Snapshot {
	return Snapshot{State: s.state, Display: s.display}
}
