package app

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

// DeleteAction handles the delete command which removes the session at
// the given list position.
func DeleteAction(ctx *cli.Context) error {
	index, err := strconv.Atoi(ctx.Args().First())
	if err != nil {
		return errIndexRequired
	}

	wlog, db, err := openLog()
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := wlog.DeleteAt(index)
	if err != nil {
		return err
	}

	if err := commit(db, wlog); err != nil {
		return err
	}

	slog.Info(
		"session deleted",
		slog.Int("index", index),
		slog.String("description", deleted.Description),
	)

	return listSessions(wlog.List())
}

// ClearAction handles the clear command which removes all recorded
// sessions after confirmation.
func ClearAction(ctx *cli.Context) error {
	wlog, db, err := openLog()
	if err != nil {
		return err
	}
	defer db.Close()

	if wlog.Len() == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	if !ctx.Bool("force") {
		var confirmed bool

		err := huh.NewConfirm().
			Title("Remove all recorded sessions?").
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}

		if !confirmed {
			return nil
		}
	}

	cleared := wlog.Clear()

	if err := commit(db, wlog); err != nil {
		return err
	}

	slog.Info("sessions cleared", slog.Int("count", cleared))

	pterm.Success.Printfln("%d sessions cleared", cleared)

	return nil
}
