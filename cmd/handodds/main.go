// Package main provides the handodds CLI, which reports the odds of opening
// hands that meet per-card requirements.
package main

import (
	"fmt"
	"os"

	"github.com/cory-johannsen/handodds/cmd/handodds/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
