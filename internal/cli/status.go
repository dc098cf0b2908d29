package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmplkit/toolsync/internal/app"
	"github.com/tmplkit/toolsync/internal/domain"
)

func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the recorded state of the tools submodule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.Git == nil {
				return domain.ErrNotGitRepository
			}
			out, err := c.ToolsStatusUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(out.Submodules) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No submodules recorded in .gitmodules.")
				return nil
			}
			for _, sub := range out.Submodules {
				fmt.Fprintln(cmd.OutOrStdout(), formatSubmodule(sub))
			}
			return nil
		},
	}
}

// formatSubmodule renders one status line, e.g.
//
//	tools  a1b2c3d  (branch main, in sync)
func formatSubmodule(sub *domain.SubmoduleInfo) string {
	sha := "-------"
	if sub.Current != "" {
		sha = shortSHA(sub.Current)
	}
	branch := sub.Branch
	if branch == "" {
		branch = "HEAD"
	}
	state := "out of sync"
	switch {
	case sub.Current == "":
		state = "not checked out"
	case sub.InSync():
		state = "in sync"
	}
	return fmt.Sprintf("%s  %s  (branch %s, %s)", sub.Path, sha, branch, state)
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
