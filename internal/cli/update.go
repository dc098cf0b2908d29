package cli

import (
	"github.com/spf13/cobra"

	"github.com/tmplkit/toolsync/internal/app"
	"github.com/tmplkit/toolsync/internal/usecase"
)

func newUpdateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update the tools submodule from its remote",
		Long: `Update runs "git submodule update --remote --merge" when the tools
submodule is checked out, streaming the command's output to the terminal.
When no submodule is present it prints a notice and succeeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdate(cmd, c)
		},
	}
}

// runUpdate is shared by the update subcommand and the bare root invocation.
func runUpdate(cmd *cobra.Command, c *app.Container) error {
	uc := c.UpdateToolsUseCase()
	_, err := uc.Execute(cmd.Context(), usecase.UpdateToolsInput{})
	return err
}
