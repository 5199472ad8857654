package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/dinofacts/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands that already rendered their error return an ExitError;
		// anything else (flag parsing, bad --format) is printed here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
