package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"uilift/internal/cli"
)

func main() {
	// Pick up UILIFT_* overrides from a local .env when present.
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands that reached their formatter already reported the error
		// as an envelope; anything else (usage, config) prints here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
