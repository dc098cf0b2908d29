package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmplkit/toolsync/internal/app"
	"github.com/tmplkit/toolsync/internal/domain"
)

func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Check out the tools submodule for the first time",
		Long: `Init runs "git submodule update --init --recursive" when .gitmodules
declares a tools submodule that has not been checked out yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.Git == nil {
				return domain.ErrNotGitRepository
			}
			out, err := c.InitToolsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", out.Path)
			return nil
		},
	}
}
