package chrono

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseSeconds parses a base-10 integer count of seconds.
// Non-integer input wraps ErrInvalidFormat; negative values and values that
// do not fit an int wrap ErrInvalidRange.
func ParseSeconds(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q does not fit a timer", ErrInvalidRange, s)
		}

		return 0, fmt.Errorf("%w: %q, please enter a whole number of seconds", ErrInvalidFormat, s)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: timer duration must not be negative, got %d", ErrInvalidRange, n)
	}

	return n, nil
}
