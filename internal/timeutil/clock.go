package timeutil

import (
	"strings"
	"time"
)

// clockFormat is the wall-clock layout accepted on the command line.
const clockFormat = "15:04"

// ClockInput is an optional HH:MM command-line argument. The zero
// value means the argument was omitted.
type ClockInput struct {
	value    time.Time
	provided bool
}

// ParseClock interprets an HH:MM string as a timestamp on the same day
// as the reference time. An empty string yields an omitted input.
func ParseClock(s string, ref time.Time) (ClockInput, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ClockInput{}, nil
	}

	t, err := time.Parse(clockFormat, s)
	if err != nil {
		return ClockInput{}, ErrInvalidClock.Fmt(s)
	}

	return ClockInput{
		value: time.Date(
			ref.Year(),
			ref.Month(),
			ref.Day(),
			t.Hour(),
			t.Minute(),
			0,
			0,
			ref.Location(),
		),
		provided: true,
	}, nil
}

// Provided reports whether the argument was supplied.
func (c ClockInput) Provided() bool {
	return c.provided
}

// Or returns the parsed timestamp, or the fallback when the argument
// was omitted.
func (c ClockInput) Or(fallback time.Time) time.Time {
	if !c.provided {
		return fallback
	}

	return c.value
}
