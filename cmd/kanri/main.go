package main

import (
	"os"

	"github.com/kanri-dev/kanri/internal/cmd"
	"github.com/kanri-dev/kanri/internal/errors"
	"github.com/kanri-dev/kanri/internal/terminal"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *errors.ExitCodeError
		if errors.As(err, &exitErr) {
			// Launched program failed; its own output already explains why.
			os.Exit(exitErr.Code)
		}
		terminal.PrintError(err.Error())
		os.Exit(1)
	}
}
