package datemath

import "errors"

var (
	// ErrUnrecognized is returned when the input matches no supported form.
	ErrUnrecognized = errors.New("unrecognized date expression")
	// ErrInvalidClock is returned for an out-of-range or malformed HH:MM part.
	ErrInvalidClock = errors.New("invalid time of day")
)

// absoluteLayouts are tried, in order, before any relative form.
var absoluteLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

var weekdays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}
