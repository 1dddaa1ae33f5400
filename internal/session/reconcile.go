package session

import "strings"

// reconcile checks a proposed session against the log's invariants
// before it is committed:
//
//   - only one session may be open at a time
//   - a closed session must not end before it starts
//   - the description must not contain the export field delimiter
//
// Closed sessions may overlap each other: retroactive logging is
// allowed to record concurrent-seeming entries.
func (l *Log) reconcile(s Session) error {
	if s.Open() {
		if open, ok := l.OpenSession(); ok {
			return ErrOverlap.Fmt(open.Description)
		}
	} else if s.EndTime.Before(s.StartTime) {
		return ErrInvalidRange
	}

	if strings.Contains(s.Description, FieldDelimiter) {
		return ErrInvalidDescription
	}

	return nil
}
