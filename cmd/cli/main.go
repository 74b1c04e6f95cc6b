// Package main is the entry point for the quotepilot CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"quotepilot/cmd/cli/cmd"
	"quotepilot/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		if !errors.Is(err, cmd.ErrQuoteFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
