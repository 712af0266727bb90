package stopwatch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/clock"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// harness bundles a Stopwatch with the fakes driving it.
type harness struct {
	stopwatch  *Stopwatch
	clock      *clock.Fake
	dispatcher *common.FakeDispatcher
}

// newHarness builds a reset Stopwatch.
func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		clock:      clock.NewFake(time.Date(2024, time.August, 8, 8, 0, 0, 0, time.UTC)),
		dispatcher: common.NewFakeDispatcher(),
	}

	s, err := New(common.Deps{
		Clock:      h.clock,
		Dispatcher: h.dispatcher,
		Notifier:   common.NewFakeNotifier(),
		Interval:   time.Second,
	})
	require.NoError(t, err)

	h.stopwatch = s

	return h
}

// tick advances d and runs the refresh it triggers.
func (h *harness) tick(t *testing.T, d time.Duration) {
	t.Helper()

	h.clock.Advance(d)
	require.Eventually(t, func() bool { return h.dispatcher.Pending() == 1 }, time.Second, time.Millisecond)
	h.dispatcher.Drain()
}

// TestStopwatch_StartRendersElapsed checks the refresh loop output.
func TestStopwatch_StartRendersElapsed(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.Equal(t, Snapshot{State: StateReset, Display: "0:00:00"}, h.stopwatch.Snapshot())

	var displays []string

	h.stopwatch.OnChange(func(s Snapshot) { displays = append(displays, s.Display) })

	require.NoError(t, h.stopwatch.Start(context.Background()))
	require.True(t, h.stopwatch.Snapshot().Running())
	require.Equal(t, 1, h.dispatcher.Drain())

	h.tick(t, time.Second)
	require.Equal(t, "0:00:01", h.stopwatch.Snapshot().Display)

	// A long jump delivers a single refresh with the full elapsed time.
	h.tick(t, 3660*time.Second)
	require.Equal(t, "1:01:01", h.stopwatch.Snapshot().Display)
	require.Equal(t, 3661*time.Second, h.stopwatch.Elapsed())

	require.Equal(t, []string{"0:00:00", "0:00:00", "0:00:01", "1:01:01"}, displays)
}

// TestStopwatch_StopFreezesAndStartRestarts checks that Stop freezes the
// display and a later Start counts from zero again.
func TestStopwatch_StopFreezesAndStartRestarts(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	require.NoError(t, h.stopwatch.Start(context.Background()))
	h.dispatcher.Drain()
	h.tick(t, 5*time.Second)

	require.NoError(t, h.stopwatch.Stop(context.Background()))
	require.Equal(t, Snapshot{State: StateStopped, Display: "0:00:05"}, h.stopwatch.Snapshot())
	require.Eventually(t, func() bool { return h.clock.Tickers() == 0 }, time.Second, time.Millisecond)

	h.clock.Advance(time.Minute)
	h.dispatcher.Drain()
	require.Equal(t, "0:00:05", h.stopwatch.Snapshot().Display)
	require.Equal(t, 5*time.Second, h.stopwatch.Elapsed())

	require.NoError(t, h.stopwatch.Start(context.Background()))
	require.Equal(t, Snapshot{State: StateRunning, Display: "0:00:00"}, h.stopwatch.Snapshot())
	h.dispatcher.Drain()
	h.tick(t, 2*time.Second)
	require.Equal(t, "0:00:02", h.stopwatch.Snapshot().Display)
	require.Equal(t, 2*time.Second, h.stopwatch.Elapsed())
}

// TestStopwatch_ResetIsIdempotent resets from every state.
func TestStopwatch_ResetIsIdempotent(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	want := Snapshot{State: StateReset, Display: "0:00:00"}

	h.stopwatch.Reset(context.Background())
	require.Equal(t, want, h.stopwatch.Snapshot())

	require.NoError(t, h.stopwatch.Start(context.Background()))
	h.dispatcher.Drain()
	h.tick(t, 3*time.Second)

	for range 3 {
		h.stopwatch.Reset(context.Background())
		require.Equal(t, want, h.stopwatch.Snapshot())
		require.False(t, h.stopwatch.Snapshot().Running())
		require.Zero(t, h.stopwatch.Elapsed())
	}

	require.Eventually(t, func() bool { return h.clock.Tickers() == 0 }, time.Second, time.Millisecond)

	require.NoError(t, h.stopwatch.Start(context.Background()))
	require.NoError(t, h.stopwatch.Stop(context.Background()))
	h.stopwatch.Reset(context.Background())
	h.dispatcher.Drain()
	require.Equal(t, want, h.stopwatch.Snapshot())
}

// TestStopwatch_StaleRefreshIgnored stops while a refresh is queued.
func TestStopwatch_StaleRefreshIgnored(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	require.NoError(t, h.stopwatch.Start(context.Background()))
	h.dispatcher.Drain()

	h.clock.Advance(2 * time.Second)
	require.Eventually(t, func() bool { return h.dispatcher.Pending() == 1 }, time.Second, time.Millisecond)

	h.stopwatch.Reset(context.Background())
	h.dispatcher.Drain()
	require.Equal(t, "0:00:00", h.stopwatch.Snapshot().Display)
}

// TestStopwatch_InvalidTransitions covers Start while running and Stop while not running.
func TestStopwatch_InvalidTransitions(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	require.ErrorIs(t, h.stopwatch.Stop(context.Background()), ErrNotRunning)
	require.NoError(t, h.stopwatch.Start(context.Background()))
	require.ErrorIs(t, h.stopwatch.Start(context.Background()), ErrAlreadyRunning)
	require.NoError(t, h.stopwatch.Stop(context.Background()))
	require.ErrorIs(t, h.stopwatch.Stop(context.Background()), ErrNotRunning)
}

// TestState_String covers log names.
func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "reset", StateReset.String())
	require.Equal(t, "running", StateRunning.String())
	require.Equal(t, "stopped", StateStopped.String())
	require.Equal(t, "state(5)", State(5).String())
}
