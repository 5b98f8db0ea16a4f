package cli

import (
	"context"

	"github.com/runoshun/duke/internal/app"
	"github.com/spf13/cobra"
)

// newExecCommand creates the exec command for non-interactive use.
func newExecCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "exec LINE...",
		Short: "Run commands without starting a session",
		Long: `Run each argument as one command, in order.

Execution stops at the first error or at "bye".`,
		Example: `  duke exec "todo read book" "deadline return book /by 01-01-2024 6PM" list`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return s.withContainer(cmd, func(c *app.Container) error {
				for _, line := range args {
					res, err := c.Interpreter.Execute(ctx, line)
					if err != nil {
						return err
					}
					if res.Exit {
						return nil
					}
					renderResult(cmd.OutOrStdout(), res)
				}
				return nil
			})
		},
	}
}
