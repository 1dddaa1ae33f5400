package export

import (
	"errors"
	"testing"
	"time"

	"github.com/rjvisser/worklog/internal/session"
)

func at(hour, min int) time.Time {
	return time.Date(2024, time.March, 14, hour, min, 0, 0, time.Local)
}

func buildLog(t *testing.T, sessions ...session.Session) *session.Log {
	t.Helper()

	l := session.NewLog()

	for _, s := range sessions {
		if err := l.Append(s); err != nil {
			t.Fatalf("unexpected error appending %v: %v", s, err)
		}
	}

	return l
}

func TestTextScenario(t *testing.T) {
	l := buildLog(t, session.Session{
		StartTime:   at(9, 0),
		Description: "task A",
	})

	if _, err := l.CloseOpen(at(10, 30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Text(l.List(), Options{Strict: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "09:00,10:30,01:30,task A\n"
	if got != want {
		t.Errorf("expected %q, but got: %q", want, got)
	}
}

func TestTextMultipleSessionsInChronologicalOrder(t *testing.T) {
	l := buildLog(t,
		session.Session{
			StartTime:   at(13, 15),
			EndTime:     at(14, 0),
			Description: "review",
		},
		session.Session{
			StartTime:   at(9, 0),
			EndTime:     at(11, 5),
			Description: "deep work",
		},
	)

	got, err := Text(l.List(), Options{Strict: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "09:00,11:05,02:05,deep work\n13:15,14:00,00:45,review\n"
	if got != want {
		t.Errorf("expected %q, but got: %q", want, got)
	}
}

func TestTextStrictRejectsOpenSession(t *testing.T) {
	l := buildLog(t, session.Session{
		StartTime:   at(9, 0),
		Description: "task A",
	})

	_, err := Text(l.List(), Options{Strict: true})
	if !errors.Is(err, ErrIncompleteSession) {
		t.Fatalf("expected ErrIncompleteSession, but got: %v", err)
	}
}

func TestTextLaxRendersOpenSessionWithEmptyFields(t *testing.T) {
	l := buildLog(t, session.Session{
		StartTime:   at(9, 0),
		Description: "task A",
	})

	got, err := Text(l.List(), Options{Strict: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "09:00,,,task A\n"
	if got != want {
		t.Errorf("expected %q, but got: %q", want, got)
	}
}

func TestTextEmptyLog(t *testing.T) {
	got, err := Text(nil, Options{Strict: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "" {
		t.Errorf("expected empty output, but got: %q", got)
	}
}

func TestTextIsDeterministic(t *testing.T) {
	l := buildLog(t,
		session.Session{
			StartTime:   at(9, 0),
			EndTime:     at(10, 0),
			Description: "task A",
		},
		session.Session{
			StartTime:   at(9, 0),
			EndTime:     at(10, 0),
			Description: "task B",
		},
	)

	first, err := Text(l.List(), Options{Strict: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		next, err := Text(l.List(), Options{Strict: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if next != first {
			t.Fatalf(
				"expected identical output on every call, but got: %q and %q",
				first,
				next,
			)
		}
	}
}

func TestTextSpansMidnightDurations(t *testing.T) {
	// Multi-hour retroactive sessions still format as HH:MM totals.
	l := buildLog(t, session.Session{
		StartTime:   at(0, 0),
		EndTime:     at(23, 59),
		Description: "marathon",
	})

	got, err := Text(l.List(), Options{Strict: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "00:00,23:59,23:59,marathon\n"
	if got != want {
		t.Errorf("expected %q, but got: %q", want, got)
	}
}
