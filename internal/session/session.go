// Package session defines logged work sessions and the ordered log
// that holds them
package session

import "time"

// FieldDelimiter separates the fields of an exported session line.
// Descriptions must not contain it.
const FieldDelimiter = ","

// Session represents a single logged work interval. A zero EndTime
// marks the session as still in progress.
type Session struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
}

// Open reports whether the session is still in progress.
func (s *Session) Open() bool {
	return s.EndTime.IsZero()
}

// Duration returns the length of a closed session. It is zero while
// the session is open.
func (s *Session) Duration() time.Duration {
	if s.Open() {
		return 0
	}

	return s.EndTime.Sub(s.StartTime)
}
