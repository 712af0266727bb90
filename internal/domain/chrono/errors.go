package chrono

import "errors"

var (
	// ErrInvalidFormat reports input that cannot be parsed at all.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidRange reports well-formed input outside the accepted range.
	ErrInvalidRange = errors.New("value out of range")
)
