// Package main is the entry point for the task-tracker CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vijay4057/task-tracker/internal/app"
	"github.com/vijay4057/task-tracker/internal/cli"
	"github.com/vijay4057/task-tracker/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		if errors.Is(err, domain.ErrNotInitialized) {
			fmt.Fprintln(os.Stderr, "Task store not initialized. Run 'task-tracker init' first.")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run() error {
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
