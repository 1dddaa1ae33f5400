package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/rjvisser/worklog/internal/session"
	"github.com/rjvisser/worklog/internal/timeutil"
	"github.com/rjvisser/worklog/internal/ui"
)

const noSessionsMsg = "No sessions have been recorded"

const (
	startFormat     = "Mon, 02 Jan 15:04"
	clockFormat     = "15:04"
	nextDayFormat   = "02 Jan 15:04"
	startFormat12   = "Mon, 02 Jan 03:04 PM"
	clockFormat12   = "03:04 PM"
	nextDayFormat12 = "02 Jan 03:04 PM"
)

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, entries []session.Entry) {
	tableBody := make([][]string, len(entries))

	for i, e := range entries {
		endText := ui.Yellow("...")
		durationText := ""

		if !e.Open() {
			endText = formatEnd(e.Session)
			durationText = formatDuration(e.Session)
		}

		row := []string{
			fmt.Sprintf("%d", e.Index),
			formatStart(e.StartTime),
			endText,
			durationText,
			ui.Highlight(e.Description),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "START", "END", "DURATION", "DESCRIPTION"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func formatStart(t time.Time) string {
	if cfg.Display.TwentyFourHour {
		return t.Format(startFormat)
	}

	return t.Format(startFormat12)
}

// formatEnd renders a session's end time, including the date when the
// session runs past midnight.
func formatEnd(s session.Session) string {
	sameDay := s.StartTime.Year() == s.EndTime.Year() &&
		s.StartTime.YearDay() == s.EndTime.YearDay()

	layout := nextDayFormat
	if sameDay {
		layout = clockFormat
	}

	if !cfg.Display.TwentyFourHour {
		layout = nextDayFormat12
		if sameDay {
			layout = clockFormat12
		}
	}

	return s.EndTime.Format(layout)
}

func formatDuration(s session.Session) string {
	mins := timeutil.Round(s.Duration().Minutes())

	hrs, m := timeutil.MinsToHoursAndMins(mins)

	return fmt.Sprintf("%02d:%02d", hrs, m)
}

// listSessions prints out a table of sessions.
func listSessions(entries []session.Entry) error {
	if len(entries) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(os.Stdout, entries)

	return nil
}
