// Package export serializes the session log to the fixed
// comma-separated layout consumed by the downstream spreadsheet.
package export

import (
	"fmt"
	"strings"

	"github.com/rjvisser/worklog/internal/session"
	"github.com/rjvisser/worklog/internal/timeutil"
)

const clockFormat = "15:04"

// Options controls the strictness of the exporter.
type Options struct {
	// Strict rejects logs that still contain an open session. When
	// false, the open session is rendered with empty end and
	// duration fields instead.
	Strict bool
}

// Text renders one line per session in chronological order:
//
//	<start HH:MM>,<end HH:MM or empty>,<duration HH:MM>,<description>
//
// There is no header row and no escaping: descriptions are validated
// against the delimiter when sessions are logged. The output is
// deterministic for identical log states.
func Text(entries []session.Entry, opts Options) (string, error) {
	var b strings.Builder

	for _, e := range entries {
		if e.Open() && opts.Strict {
			return "", ErrIncompleteSession
		}

		b.WriteString(line(e.Session))
		b.WriteString("\n")
	}

	return b.String(), nil
}

func line(s session.Session) string {
	end, duration := "", ""

	if !s.Open() {
		end = s.EndTime.Format(clockFormat)
		duration = formatDuration(s)
	}

	return strings.Join(
		[]string{
			s.StartTime.Format(clockFormat),
			end,
			duration,
			s.Description,
		},
		session.FieldDelimiter,
	)
}

// formatDuration expresses a session's length as HH:MM.
func formatDuration(s session.Session) string {
	mins := timeutil.Round(s.Duration().Minutes())

	hrs, m := timeutil.MinsToHoursAndMins(mins)

	return fmt.Sprintf("%02d:%02d", hrs, m)
}
