package chrono

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDayLayout is the accepted alarm input layout.
const TimeOfDayLayout = "HH:MM:SS"

const (
	hoursPerDay      = 24
	minutesPerHour   = 60
	secondsPerMinute = 60
	secondsPerHour   = minutesPerHour * secondsPerMinute

	maxComponentDigits = 2
	timeOfDayParts     = 3
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses "H:M:S" where each component has one or two ASCII
// digits, hours are 0-23 and minutes and seconds are 0-59. Surrounding
// whitespace is ignored. Any other input wraps ErrInvalidFormat.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != timeOfDayParts {
		return TimeOfDay{}, fmt.Errorf("%w: %q, please use %s", ErrInvalidFormat, s, TimeOfDayLayout)
	}

	limits := [timeOfDayParts]int{hoursPerDay, minutesPerHour, secondsPerMinute}

	var values [timeOfDayParts]int

	for i, part := range parts {
		v, ok := parseComponent(part)
		if !ok || v >= limits[i] {
			return TimeOfDay{}, fmt.Errorf("%w: %q, please use %s", ErrInvalidFormat, s, TimeOfDayLayout)
		}

		values[i] = v
	}

	return TimeOfDay{Hour: values[0], Minute: values[1], Second: values[2]}, nil
}

// parseComponent accepts one or two ASCII digits.
func parseComponent(s string) (int, bool) {
	if s == "" || len(s) > maxComponentDigits {
		return 0, false
	}

	v := 0

	for i := range len(s) {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}

		v = v*10 + int(c-'0')
	}

	return v, true
}

// TimeOfDayOf returns the time-of-day of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Seconds returns the number of seconds since midnight.
func (d TimeOfDay) Seconds() int {
	return d.Hour*secondsPerHour + d.Minute*secondsPerMinute + d.Second
}

// ReachedBy reports whether the time-of-day of t is at or after d.
// The date of t is ignored, so a target earlier than now is reached at once.
func (d TimeOfDay) ReachedBy(t time.Time) bool {
	return TimeOfDayOf(t).Seconds() >= d.Seconds()
}

// String renders d as zero-padded HH:MM:SS.
func (d TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hour, d.Minute, d.Second)
}
