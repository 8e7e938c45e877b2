package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/plantel/cmd"
	"github.com/thenoetrevino/plantel/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Reported {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
