// Package main is the entry point for the toolsync CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/tmplkit/toolsync/internal/app"
	"github.com/tmplkit/toolsync/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		// A child git failure already wrote its own diagnostics to the
		// inherited stderr; mirror its exit code instead of printing
		// a second message.
		code, silent := exitCode(err)
		if !silent {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}

// exitCode maps an error to the process exit status. For child process
// failures the child's own status is mirrored and no extra message is
// printed (silent = true). A signal-terminated child reports ExitCode -1
// and intentionally takes the generic path: there is no child status to
// mirror, so the error is printed and the process exits 1.
func exitCode(err error) (code int, silent bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode(), true
	}
	return 1, false
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
