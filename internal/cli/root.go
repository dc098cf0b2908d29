// Package cli provides the command-line interface for toolsync.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tmplkit/toolsync/internal/app"
)

// NewRootCommand creates the root command for toolsync.
// It receives the container for dependency injection and version for display.
// Invoking toolsync with no subcommand runs the update action, matching the
// template helper it replaces.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "toolsync",
		Short: "Keep the template's tools submodule in sync",
		Long: `toolsync keeps a project template's vendored tools submodule in sync
with its remote. Run from the template root, it updates the checked-out
submodule via git, or tells you when no submodule is present.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdate(cmd, c)
		},
	}

	root.AddCommand(
		newUpdateCommand(c),
		newStatusCommand(c),
		newInitCommand(c),
		newConfigCommand(c),
	)

	return root
}
