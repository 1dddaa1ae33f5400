package export

import "github.com/rjvisser/worklog/internal/apperr"

var ErrIncompleteSession = &apperr.Error{
	Kind:    apperr.IncompleteSession,
	Message: "cannot export while a session is open: close it first",
}
