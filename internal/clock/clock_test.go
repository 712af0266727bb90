package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestReal_NowAndTicker sanity-checks the system-backed clock.
func TestReal_NowAndTicker(t *testing.T) {
	t.Parallel()

	c := Real()
	require.WithinDuration(t, time.Now(), c.Now(), time.Second)

	ticker := c.NewTicker(time.Millisecond)
	defer ticker.Stop()

	select {
	case <-ticker.C():
	case <-time.After(time.Second):
		require.Fail(t, "real ticker did not fire")
	}
}

// TestFake_Advance verifies ticks are delivered when due and dropped when unread.
func TestFake_Advance(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	f := NewFake(start)

	ticker := f.NewTicker(time.Second)
	require.Equal(t, 1, f.Tickers())

	f.Advance(500 * time.Millisecond)
	require.Empty(t, ticker.C())

	f.Advance(500 * time.Millisecond)
	require.Equal(t, start.Add(time.Second), <-ticker.C())

	// Three ticks become due but only one fits the buffer.
	f.Advance(3 * time.Second)
	require.Equal(t, start.Add(4*time.Second), <-ticker.C())
	require.Empty(t, ticker.C())
	require.Equal(t, start.Add(4*time.Second), f.Now())

	ticker.Stop()
	ticker.Stop()
	require.Zero(t, f.Tickers())

	f.Advance(time.Second)
	require.Empty(t, ticker.C())
}

// TestFake_Set moves time without ticking.
func TestFake_Set(t *testing.T) {
	t.Parallel()

	f := NewFake(time.Unix(0, 0))
	ticker := f.NewTicker(time.Second)

	defer ticker.Stop()

	f.Set(time.Unix(100, 0))
	require.Equal(t, time.Unix(100, 0), f.Now())
	require.Empty(t, ticker.C())
}
