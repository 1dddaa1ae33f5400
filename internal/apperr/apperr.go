// Package apperr defines the error values surfaced to users of worklog
package apperr

import "fmt"

// Kind classifies a user-facing failure.
type Kind string

const (
	InvalidRange       Kind = "invalid_range"
	Overlap            Kind = "overlap"
	NoOpenSession      Kind = "no_open_session"
	IndexOutOfRange    Kind = "index_out_of_range"
	InvalidDescription Kind = "invalid_description"
	IncompleteSession  Kind = "incomplete_session"
	InvalidClock       Kind = "invalid_clock"
)

// Error is a user-input failure with a stable kind. Errors of the same
// kind compare equal under errors.Is regardless of message arguments.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// Fmt returns a copy of e with format arguments applied to its message.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Kind:    e.Kind,
		Message: fmt.Sprintf(e.Message, args...),
	}
}
