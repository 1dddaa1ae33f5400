package session

import "github.com/rjvisser/worklog/internal/apperr"

var (
	ErrOverlap = &apperr.Error{
		Kind:    apperr.Overlap,
		Message: "a session is already open (%s): close it before starting another",
	}

	ErrNoOpenSession = &apperr.Error{
		Kind:    apperr.NoOpenSession,
		Message: "there is no open session",
	}

	ErrIndexOutOfRange = &apperr.Error{
		Kind:    apperr.IndexOutOfRange,
		Message: "session %d does not exist",
	}

	ErrInvalidRange = &apperr.Error{
		Kind:    apperr.InvalidRange,
		Message: "the end time must not be earlier than the start time",
	}

	ErrInvalidDescription = &apperr.Error{
		Kind:    apperr.InvalidDescription,
		Message: "the description must not contain '" + FieldDelimiter + "'",
	}
)
