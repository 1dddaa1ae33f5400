// Package app provides the command-line actions of worklog
package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/rjvisser/worklog/internal/config"
	"github.com/rjvisser/worklog/internal/logging"
	"github.com/rjvisser/worklog/internal/pathutil"
	"github.com/rjvisser/worklog/internal/session"
	"github.com/rjvisser/worklog/internal/timeutil"
	"github.com/rjvisser/worklog/internal/ui"
	"github.com/rjvisser/worklog/store"
)

const (
	envNoColor        = "NO_COLOR"
	envWorklogNoColor = "WORKLOG_NO_COLOR"
	envWorklogDebug   = "WORKLOG_DEBUG"
)

var cfg *config.Config

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// openLog loads the saved sessions into an in-memory log.
func openLog() (*session.Log, store.DB, error) {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	sessions, err := db.LoadSessions()
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return session.FromSessions(sessions), db, nil
}

// commit writes the mutated log back to the database in full.
func commit(db store.DB, wlog *session.Log) error {
	return db.SaveSessions(wlog.Sessions())
}

// BeforeAction runs before any command and sets up paths,
// configuration, and logging.
func BeforeAction(ctx *cli.Context) error {
	cli.AppHelpTemplate = helpText()

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	var err error

	cfg, err = config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	err = logging.Init(
		pathutil.LogFilePath(),
		os.Getenv(envWorklogDebug) != "",
	)
	if err != nil {
		return err
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if WORKLOG_NO_COLOR is set
	if _, exists := os.LookupEnv(envWorklogNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

// ShowAction handles the show command which prints the recorded
// sessions.
func ShowAction(ctx *cli.Context) error {
	wlog, db, err := openLog()
	if err != nil {
		return err
	}
	defer db.Close()

	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	entries := wlog.List()

	filtered := make([]session.Entry, 0, len(entries))

	for _, e := range entries {
		if filter.Includes(e.StartTime) {
			filtered = append(filtered, e)
		}
	}

	slog.Debug(spew.Sdump(filtered))

	return listSessions(filtered)
}

// LogAction handles the log command which records a new session,
// either from its arguments or by resuming a previous one.
func LogAction(ctx *cli.Context) error {
	if ctx.IsSet("resume") {
		return resumeSession(ctx, ctx.Int("resume"))
	}

	description := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if description == "" {
		return errDescriptionRequired
	}

	start, end, err := timeutil.NewResolver().
		ResolveLog(ctx.String("start"), ctx.String("end"))
	if err != nil {
		return err
	}

	wlog, db, err := openLog()
	if err != nil {
		return err
	}
	defer db.Close()

	err = wlog.Append(session.Session{
		StartTime:   start,
		EndTime:     end,
		Description: description,
	})
	if err != nil {
		return err
	}

	if err := commit(db, wlog); err != nil {
		return err
	}

	slog.Info(
		"session logged",
		slog.String("description", description),
		slog.Time("start", start),
		slog.Bool("open", end.IsZero()),
	)

	return listSessions(wlog.List())
}

// ResumeAction handles the resume command. It accepts an optional list
// position and defaults to the most recent session.
func ResumeAction(ctx *cli.Context) error {
	var index int

	if arg := ctx.Args().First(); arg != "" {
		var err error

		index, err = strconv.Atoi(arg)
		if err != nil {
			return errIndexRequired
		}
	}

	return resumeSession(ctx, index)
}

// resumeSession starts a new session copying the description of the
// session at the given display index. A zero index refers to the most
// recent session.
func resumeSession(ctx *cli.Context, index int) error {
	start, end, err := timeutil.NewResolver().
		ResolveLog(ctx.String("start"), ctx.String("end"))
	if err != nil {
		return err
	}

	wlog, db, err := openLog()
	if err != nil {
		return err
	}
	defer db.Close()

	if wlog.Len() == 0 {
		return errNothingToResume
	}

	if index == 0 {
		index = wlog.Len()
	}

	if err := wlog.ResumeAt(index, start, end); err != nil {
		return err
	}

	if err := commit(db, wlog); err != nil {
		return err
	}

	slog.Info("session resumed", slog.Int("index", index))

	return listSessions(wlog.List())
}

// CloseAction handles the close command which ends the session
// currently in progress.
func CloseAction(ctx *cli.Context) error {
	end, err := timeutil.NewResolver().ResolveClose(ctx.String("end"))
	if err != nil {
		return err
	}

	wlog, db, err := openLog()
	if err != nil {
		return err
	}
	defer db.Close()

	closed, err := wlog.CloseOpen(end)
	if err != nil {
		return err
	}

	if err := commit(db, wlog); err != nil {
		return err
	}

	slog.Info(
		"session closed",
		slog.String("description", closed.Description),
		slog.Duration("duration", closed.Duration()),
	)

	notify("Session closed", closeMessage(closed))

	if err := runSessionCmd(cfg.Settings.Cmd); err != nil {
		pterm.Warning.Printfln("session command failed: %v", err)
	}

	return listSessions(wlog.List())
}

func closeMessage(s session.Session) string {
	mins := timeutil.Round(s.Duration().Minutes())

	hrs, m := timeutil.MinsToHoursAndMins(mins)

	return fmt.Sprintf("%s (%dh %02dm)", s.Description, hrs, m)
}

// notify sends a desktop notification.
func notify(title, msg string) {
	if !cfg.Notification.Enabled {
		return
	}

	err := beeep.Notify(title, msg, "")
	if err != nil {
		slog.Error(
			"unable to display notification",
			slog.Any("error", err),
		)
	}
}

// runSessionCmd executes the configured post-session command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
