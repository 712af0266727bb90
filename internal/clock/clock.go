package clock

import "time"

// Clock provides the current time and periodic tickers.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on C until Stop is called.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// realClock implements Clock using the time package.
type realClock struct{}

// Real returns a Clock backed by the system time.
//
//nolint:ireturn // Callers depend on the interface only.
func Real() Clock {
	return realClock{}
}

// Now returns the current local time.
func (realClock) Now() time.Time {
	return time.Now()
}

// NewTicker wraps time.NewTicker.
//
//nolint:ireturn // Callers depend on the interface only.
func (realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

// realTicker adapts *time.Ticker to Ticker.
type realTicker struct {
	ticker *time.Ticker
}

// C returns the tick channel.
func (t *realTicker) C() <-chan time.Time {
	return t.ticker.C
}

// Stop turns the ticker off.
func (t *realTicker) Stop() {
	t.ticker.Stop()
}
