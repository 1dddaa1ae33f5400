package timeutil

import "github.com/rjvisser/worklog/internal/apperr"

var (
	ErrInvalidClock = &apperr.Error{
		Kind:    apperr.InvalidClock,
		Message: "invalid time %q: times must be in HH:MM format",
	}

	ErrInvalidRange = &apperr.Error{
		Kind:    apperr.InvalidRange,
		Message: "the end time must not be earlier than the start time",
	}
)
