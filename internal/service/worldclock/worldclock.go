package worldclock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/chrono"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/schedule"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// Zone is a labelled time zone.
type Zone struct {
	Label    string
	Location *time.Location
}

// Reading is one rendered clock.
type Reading struct {
	Label string
	// Text is the civil time in the zone, YYYY-MM-DD HH:MM:SS.
	Text string
}

// errNoZones is returned when New receives an empty zone list.
var errNoZones = errors.New("at least one zone is required")

// LoadZones resolves configured zones through the IANA database.
func LoadZones(zones []config.Zone) ([]Zone, error) {
	result := make([]Zone, 0, len(zones))

	for _, z := range zones {
		loc, err := time.LoadLocation(z.Location)
		if err != nil {
			return nil, fmt.Errorf("load zone %q: %w", z.Location, err)
		}

		result = append(result, Zone{Label: z.Label, Location: loc})
	}

	return result, nil
}

// WorldClock keeps the readings of its zones up to date.
type WorldClock struct {
	deps  common.Deps
	zones []Zone

	// mu protects readings.
	mu       sync.Mutex
	readings []Reading

	// runMu protects loop.
	runMu sync.Mutex
	loop  *schedule.Loop

	listeners common.Listeners[[]Reading]
}

// New creates a WorldClock for zones, in display order.
func New(deps common.Deps, zones []Zone) (*WorldClock, error) {
	deps, err := deps.Normalize()
	if err != nil {
		return nil, fmt.Errorf("world clock: %w", err)
	}

	if len(zones) == 0 {
		return nil, errNoZones
	}

	w := &WorldClock{
		deps:  deps,
		zones: append([]Zone(nil), zones...),
	}
	w.readings = w.Render(deps.Clock.Now())

	return w, nil
}

// Zones returns the configured zones.
func (w *WorldClock) Zones() []Zone {
	return append([]Zone(nil), w.zones...)
}

// OnChange registers fn to receive every refresh.
func (w *WorldClock) OnChange(fn func([]Reading)) {
	w.listeners.Add(fn)
}

// Readings returns the latest readings.
func (w *WorldClock) Readings() []Reading {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]Reading(nil), w.readings...)
}

// Render converts now into every zone. It does not change the stored readings.
func (w *WorldClock) Render(now time.Time) []Reading {
	readings := make([]Reading, len(w.zones))
	for i, z := range w.zones {
		readings[i] = Reading{Label: z.Label, Text: chrono.FormatIn(now, z.Location)}
	}

	return readings
}

// Run starts the refresh loop; the first refresh is immediate. The loop ends
// with ctx or Stop. Calling Run while running is a no-op.
func (w *WorldClock) Run(ctx context.Context) {
	ctx = logger.WithName(ctx, "world-clock")

	w.runMu.Lock()
	defer w.runMu.Unlock()

	if w.loop != nil {
		select {
		case <-w.loop.Done():
		default:
			return
		}
	}

	logger.DebugKV(ctx, "World clocks running", "zones", len(w.zones))

	w.loop = schedule.Start(ctx, w.deps.Clock, w.deps.Interval, w.deps.Dispatcher, w.refresh,
		schedule.WithImmediate())
}

// Stop ends the refresh loop.
func (w *WorldClock) Stop() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	w.loop.Stop()
	w.loop = nil
}

// refresh runs on the UI goroutine.
func (w *WorldClock) refresh(now time.Time) {
	readings := w.Render(now)

	w.mu.Lock()
	w.readings = readings
	w.mu.Unlock()

	w.listeners.Notify(append([]Reading(nil), readings...))
}
