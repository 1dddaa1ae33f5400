package store

import "github.com/rjvisser/worklog/internal/session"

// DB is the database storage interface.
type DB interface {
	// LoadSessions returns every saved session in insertion order.
	LoadSessions() ([]session.Session, error)
	// SaveSessions replaces the saved log with the given sessions.
	SaveSessions(sessions []session.Session) error
	// Close ends the database connection
	Close() error
}
