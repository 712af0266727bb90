package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/chrono"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/repository/exitlog"
	"github.com/oshokin/alarm-clock/internal/service/alarm"
	"github.com/oshokin/alarm-clock/internal/service/common"
	"github.com/oshokin/alarm-clock/internal/service/instance"
	"github.com/oshokin/alarm-clock/internal/service/stopwatch"
	"github.com/oshokin/alarm-clock/internal/service/timer"
	"github.com/oshokin/alarm-clock/internal/service/worldclock"
)

// Options controls how the shell builds its features.
type Options struct {
	// Config supplies zones, interval and the exit log path; nil means config.Default.
	Config *config.Config
	// Deps are shared by every feature. Interval defaults to Config.TickInterval.
	Deps common.Deps
	// ExitLog overrides the repository built from Config.ExitLogFile.
	ExitLog exitlog.Repository
}

// Shell owns the features of one window or terminal session.
type Shell struct {
	Alarm      *alarm.Alarm
	Timer      *timer.Timer
	Stopwatch  *stopwatch.Stopwatch
	WorldClock *worldclock.WorldClock

	// exitLog is nil when no exit log is configured.
	exitLog exitlog.Repository
}

// New builds all four features.
func New(opts *Options) (*Shell, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	deps := opts.Deps
	if deps.Interval <= 0 {
		deps.Interval = cfg.TickInterval
	}

	s := &Shell{exitLog: opts.ExitLog}
	if s.exitLog == nil && cfg.ExitLogFile != "" {
		s.exitLog = exitlog.NewFileRepository(cfg.ExitLogFile)
	}

	var err error

	if s.Alarm, err = alarm.New(deps); err != nil {
		return nil, err
	}

	if s.Timer, err = timer.New(deps, s.LogExitTime); err != nil {
		return nil, err
	}

	if s.Stopwatch, err = stopwatch.New(deps); err != nil {
		return nil, err
	}

	zones, err := worldclock.LoadZones(cfg.Zones)
	if err != nil {
		return nil, fmt.Errorf("world clock zones: %w", err)
	}

	if s.WorldClock, err = worldclock.New(deps, zones); err != nil {
		return nil, err
	}

	return s, nil
}

// LogExitTime records a timer completion at the given instant. It is the
// timer's completion hook; failures are reported but never fatal.
func (s *Shell) LogExitTime(ctx context.Context, at time.Time) error {
	logger.InfoKV(ctx, "Timer completed, logging exit time", "exit_time", at.Format(chrono.ZonedLayout))

	if s.exitLog == nil {
		return nil
	}

	if err := s.exitLog.Append(ctx, at); err != nil {
		return fmt.Errorf("append exit log: %w", err)
	}

	return nil
}

// ExitTimes returns the recorded timer completions. No configured log and
// a log not written yet both yield an empty list.
func (s *Shell) ExitTimes(ctx context.Context) ([]time.Time, error) {
	if s.exitLog == nil {
		return nil, nil
	}

	times, err := s.exitLog.Load(ctx)
	if errors.Is(err, exitlog.ErrNotFound) {
		return nil, nil
	}

	return times, err
}

// Close stops every loop the shell's features may have running.
func (s *Shell) Close(ctx context.Context) {
	_ = s.Alarm.Deactivate(ctx)
	_ = s.Timer.Cancel(ctx)
	_ = s.Stopwatch.Stop(ctx)
	s.WorldClock.Stop()
}

// WarnIfAlreadyRunning logs a warning when another copy of this executable
// is running. Errors listing processes are logged at debug level only.
func WarnIfAlreadyRunning(ctx context.Context) {
	pids, err := instance.Others()
	if err != nil {
		logger.DebugKV(ctx, "Unable to list processes", "error", err)

		return
	}

	if len(pids) > 0 {
		logger.WarnKV(ctx, "Another alarm clock is already running", "pids", pids)
	}
}

// RunWithQueue drains q on the calling goroutine while body runs on another.
// It returns when body returns or ctx is done, with body's error.
func RunWithQueue(ctx context.Context, q *common.Queue, body func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()

		return body(ctx)
	})

	q.Run(ctx)

	return g.Wait()
}
