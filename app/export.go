package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/rjvisser/worklog/internal/config"
	"github.com/rjvisser/worklog/internal/export"
	"github.com/rjvisser/worklog/internal/session"
)

// ExportAction handles the export command which serializes the
// recorded sessions to the spreadsheet format.
func ExportAction(ctx *cli.Context) error {
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

	opts := export.Options{
		Strict: cfg.Export.Strict,
	}

	if ctx.Bool("lax") {
		opts.Strict = false
	}

	text, err := export.Text(filtered, opts)
	if err != nil {
		return err
	}

	if output := ctx.String("output"); output != "" {
		err := os.WriteFile(output, []byte(text), 0o644)
		if err != nil {
			return fmt.Errorf("writing export file failed: %w", err)
		}

		slog.Info(
			"sessions exported",
			slog.Int("count", len(filtered)),
			slog.String("file", output),
		)

		pterm.Success.Printfln(
			"%d sessions exported to %s",
			len(filtered),
			output,
		)

		return nil
	}

	fmt.Fprint(config.Stdout, text)

	return nil
}
