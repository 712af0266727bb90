package schedule

import (
	"context"
	"time"

	"github.com/oshokin/alarm-clock/internal/clock"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// Loop is a running update loop.
type Loop struct {
	// cancel stops the waiting goroutine.
	cancel context.CancelFunc
	// done is closed once the goroutine has exited.
	done chan struct{}
}

// settings holds the optional behaviour of a loop.
type settings struct {
	// immediate posts one invocation before the first interval elapses.
	immediate bool
}

// Option configures a loop.
type Option func(*settings)

// WithImmediate runs the callback once right away, then on every tick.
func WithImmediate() Option {
	return func(s *settings) {
		s.immediate = true
	}
}

// Start posts fn(now) to dispatcher once per interval until ctx is done or
// Stop is called. The ticker exists when Start returns, so no tick of the
// first interval can be missed.
func Start(
	ctx context.Context,
	clk clock.Clock,
	interval time.Duration,
	dispatcher common.Dispatcher,
	fn func(now time.Time),
	opts ...Option,
) *Loop {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	ctx, cancel := context.WithCancel(ctx)
	ticker := clk.NewTicker(interval)

	l := &Loop{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	if s.immediate {
		now := clk.Now()
		dispatcher.Post(func() { fn(now) })
	}

	go func() {
		defer close(l.done)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C():
				// A tick racing with cancellation is not delivered.
				if ctx.Err() != nil {
					return
				}

				dispatcher.Post(func() { fn(now) })
			}
		}
	}()

	return l
}

// Stop cancels the loop without waiting for it. It is safe on a nil Loop
// and safe to call more than once.
func (l *Loop) Stop() {
	if l == nil {
		return
	}

	l.cancel()
}

// Done is closed when the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
