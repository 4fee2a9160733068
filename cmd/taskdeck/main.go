// Package main is the entry point for the taskdeck CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	container, err := app.New()
	if err != nil {
		// Missing configuration fails fast with a diagnostic rather
		// than silently hitting an invalid endpoint. Help and version
		// still work without it.
		if errors.Is(err, domain.ErrMissingAPIURL) {
			if canRunUnconfigured(os.Args[1:]) {
				rootCmd := cli.NewRootCommand(nil, version)
				return rootCmd.Execute()
			}
			return fmt.Errorf("%w\nset api.base_url in the config file or TASKDECK_API_URL", err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// canRunUnconfigured reports whether the invocation needs no API
// configuration at all.
func canRunUnconfigured(args []string) bool {
	if len(args) == 0 {
		return false
	}
	if args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
