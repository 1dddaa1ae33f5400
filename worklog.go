package worklog

import (
	"github.com/urfave/cli/v2"

	"github.com/rjvisser/worklog/app"
	"github.com/rjvisser/worklog/internal/config"
)

var (
	startTimeFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Specify a start time in HH:MM format (defaults to the current time)",
	}

	endTimeFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "Specify an end time in HH:MM format",
	}

	closeTimeFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "Specify an end time in HH:MM format (defaults to the current time)",
	}

	resumeFlag = &cli.IntFlag{
		Name:    "resume",
		Aliases: []string{"r"},
		Usage:   "Copy the description of the session at the given list position (defaults to the last session)",
	}

	forceFlag = &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   "Skip the confirmation prompt",
	}

	laxFlag = &cli.BoolFlag{
		Name:  "lax",
		Usage: "Export an open session with empty end and duration fields instead of failing",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the export to the specified file instead of standard output",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Specify a time period. Possible values are: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	filterStartFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Only include sessions starting on or after this date",
	}

	filterEndFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "Only include sessions starting on or before this date",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)

// GetApp retrieves the worklog app instance.
func GetApp() *cli.App {
	filterFlags := []cli.Flag{
		periodFlag,
		filterStartFlag,
		filterEndFlag,
		noColorFlag,
	}

	worklogApp := &cli.App{
		Name: "worklog",
		Authors: []*cli.Author{
			{
				Name:  "Robert-Jan Visser",
				Email: "rjvisser@posteo.net",
			},
		},
		Usage:                "Worklog records your work sessions by timestamps. Calling it without arguments shows the recorded sessions.",
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the recorded sessions",
				Action: app.ShowAction,
				Flags:  filterFlags,
			},
			{
				Name:      "log",
				Usage:     "Log a work session, optionally providing start and end times",
				UsageText: "log [OPTIONS] [DESCRIPTION]",
				Action:    app.LogAction,
				Flags: []cli.Flag{
					startTimeFlag,
					endTimeFlag,
					resumeFlag,
					noColorFlag,
				},
			},
			{
				Name:      "resume",
				Usage:     "Start a new session copying the description of a previous one",
				UsageText: "resume [INDEX]",
				Action:    app.ResumeAction,
				Flags: []cli.Flag{
					startTimeFlag,
					noColorFlag,
				},
			},
			{
				Name:   "close",
				Usage:  "End the current work session",
				Action: app.CloseAction,
				Flags: []cli.Flag{
					closeTimeFlag,
					noColorFlag,
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a session by its list position",
				UsageText: "delete INDEX",
				Action:    app.DeleteAction,
				Flags:     []cli.Flag{noColorFlag},
			},
			{
				Name:   "clear",
				Usage:  "Remove all recorded sessions",
				Action: app.ClearAction,
				Flags: []cli.Flag{
					forceFlag,
					noColorFlag,
				},
			},
			{
				Name:   "export",
				Usage:  "Export all sessions to comma-separated format for spreadsheets",
				Action: app.ExportAction,
				Flags: append(
					[]cli.Flag{
						laxFlag,
						outputFlag,
					},
					filterFlags...,
				),
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Action: app.ShowAction,
		Before: app.BeforeAction,
	}

	return worklogApp
}
