package main

import (
	"errors"
	"os"

	"github.com/teklund/barrelint/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(2)
	}
}
