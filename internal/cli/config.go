package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmplkit/toolsync/internal/app"
)

func newConfigCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.TOML)
			return nil
		},
	}
}
