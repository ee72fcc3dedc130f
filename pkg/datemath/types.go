package datemath

import (
	"errors"
	"time"
)

// ErrUnrecognized is returned for text that is neither a timestamp nor a known phrase.
var ErrUnrecognized = errors.New("unrecognized date")

// ParseResult holds the result of parsing a due-date string.
type ParseResult struct {
	AbsoluteTime time.Time
	// IsAllDay is set when the input named a day but no time of day.
	IsAllDay bool
}
