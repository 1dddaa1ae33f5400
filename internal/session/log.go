package session

import (
	"sort"
	"time"
)

// Entry pairs a session with its current 1-based position in the
// chronological listing. Positions are recomputed on every List call
// and are not stable across mutations.
type Entry struct {
	Session

	Index int
}

// Log is an ordered collection of sessions. Sessions are kept in
// chronological order of their start times, with ties broken by
// insertion order. At most one session may be open at a time.
//
// Every mutation validates its inputs before touching the collection
// so that a failed operation leaves the log unchanged.
type Log struct {
	sessions []Session
}

// NewLog returns an empty session log.
func NewLog() *Log {
	return &Log{}
}

// FromSessions rebuilds a log from persisted records. The records are
// re-sorted chronologically in case the storage order has drifted.
func FromSessions(sessions []Session) *Log {
	l := &Log{
		sessions: make([]Session, len(sessions)),
	}

	copy(l.sessions, sessions)

	l.sort()

	return l
}

// Len returns the number of sessions in the log.
func (l *Log) Len() int {
	return len(l.sessions)
}

// List returns all sessions in chronological order together with
// their display indices.
func (l *Log) List() []Entry {
	entries := make([]Entry, len(l.sessions))

	for i := range l.sessions {
		entries[i] = Entry{
			Session: l.sessions[i],
			Index:   i + 1,
		}
	}

	return entries
}

// OpenSession returns the session that is currently in progress.
func (l *Log) OpenSession() (Session, bool) {
	for i := range l.sessions {
		if l.sessions[i].Open() {
			return l.sessions[i], true
		}
	}

	return Session{}, false
}

// Append validates the proposed session against the log's invariants
// and inserts it in chronological position.
func (l *Log) Append(s Session) error {
	if err := l.reconcile(s); err != nil {
		return err
	}

	l.sessions = append(l.sessions, s)

	l.sort()

	return nil
}

// CloseOpen sets the end time of the session that is currently in
// progress.
func (l *Log) CloseOpen(end time.Time) (Session, error) {
	for i := range l.sessions {
		if !l.sessions[i].Open() {
			continue
		}

		if end.Before(l.sessions[i].StartTime) {
			return Session{}, ErrInvalidRange
		}

		l.sessions[i].EndTime = end

		return l.sessions[i], nil
	}

	return Session{}, ErrNoOpenSession
}

// DeleteAt removes the session at the given display index and returns
// it.
func (l *Log) DeleteAt(index int) (Session, error) {
	if index < 1 || index > len(l.sessions) {
		return Session{}, ErrIndexOutOfRange.Fmt(index)
	}

	s := l.sessions[index-1]

	l.sessions = append(l.sessions[:index-1], l.sessions[index:]...)

	return s, nil
}

// Clear removes all sessions and reports how many were removed.
func (l *Log) Clear() int {
	n := len(l.sessions)

	l.sessions = nil

	return n
}

// ResumeAt appends a new session that copies its description from the
// session at the given display index. The new session has its own
// lifecycle: mutating either afterwards does not affect the other.
func (l *Log) ResumeAt(index int, start, end time.Time) error {
	if index < 1 || index > len(l.sessions) {
		return ErrIndexOutOfRange.Fmt(index)
	}

	return l.Append(Session{
		StartTime:   start,
		EndTime:     end,
		Description: l.sessions[index-1].Description,
	})
}

// Sessions returns a copy of the log's records in chronological order
// for persistence.
func (l *Log) Sessions() []Session {
	sessions := make([]Session, len(l.sessions))

	copy(sessions, l.sessions)

	return sessions
}

func (l *Log) sort() {
	sort.SliceStable(l.sessions, func(i, j int) bool {
		return l.sessions[i].StartTime.Before(l.sessions[j].StartTime)
	})
}
