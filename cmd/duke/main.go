// Package main is the entry point for the duke CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/duke/internal/app"
	"github.com/runoshun/duke/internal/cli"
	"github.com/runoshun/duke/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	rootCmd := cli.NewRootCommand(app.New, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// formatError adds a hint for failures that end the session.
func formatError(err error) string {
	if errors.Is(err, domain.ErrStorage) {
		return fmt.Sprintf("Error: %v\nduke stopped because the task file could not be read or written.", err)
	}
	return fmt.Sprintf("Error: %v", err)
}
