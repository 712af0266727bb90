package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock for tests.
// Like time.Ticker, a fake ticker delivers the current time and drops ticks
// its reader has not consumed.
type Fake struct {
	// mu protects now and tickers.
	mu sync.Mutex
	// now is the current fake time.
	now time.Time
	// tickers are the tickers not yet stopped.
	tickers []*fakeTicker
}

// NewFake returns a Fake clock reading now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

// Now returns the current fake time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// NewTicker returns a ticker firing every d of fake time.
//
//nolint:ireturn // Satisfies Clock.
func (f *Fake) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	t := &fakeTicker{
		clock:    f,
		interval: d,
		next:     f.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	f.tickers = append(f.tickers, t)

	return t
}

// Set moves the clock to now without firing tickers.
func (f *Fake) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now
}

// Advance moves the clock forward by d and fires every ticker that became due.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)

	for _, t := range f.tickers {
		for !t.next.After(f.now) {
			select {
			case t.ch <- f.now:
			default:
			}

			t.next = t.next.Add(t.interval)
		}
	}
}

// Tickers returns the number of running tickers.
func (f *Fake) Tickers() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.tickers)
}

// remove drops t from the running set.
func (f *Fake) remove(t *fakeTicker) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, candidate := range f.tickers {
		if candidate == t {
			f.tickers = append(f.tickers[:i], f.tickers[i+1:]...)

			return
		}
	}
}

// fakeTicker is a Ticker driven by Fake.Advance.
type fakeTicker struct {
	clock    *Fake
	interval time.Duration
	next     time.Time
	ch       chan time.Time
}

// C returns the tick channel.
func (t *fakeTicker) C() <-chan time.Time {
	return t.ch
}

// Stop removes the ticker from its clock. It is safe to call more than once.
func (t *fakeTicker) Stop() {
	t.clock.remove(t)
}
