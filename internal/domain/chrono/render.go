package chrono

import (
	"fmt"
	"time"
)

// ZonedLayout is the layout of every world-clock reading.
const ZonedLayout = time.DateTime

// FormatElapsed renders the whole seconds of d as H:MM:SS. Hours are not
// padded and not wrapped at 24; negative durations render as zero.
func FormatElapsed(d time.Duration) string {
	total := max(int64(d/time.Second), 0)

	hours := total / secondsPerHour
	minutes := total % secondsPerHour / secondsPerMinute
	seconds := total % secondsPerMinute

	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// FormatIn renders the civil time of t in loc using ZonedLayout.
func FormatIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ZonedLayout)
}
