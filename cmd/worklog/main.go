package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/rjvisser/worklog"
)

func run(args []string) error {
	return worklog.GetApp().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
