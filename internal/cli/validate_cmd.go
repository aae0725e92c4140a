package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brimline/capquote/internal/cli/formatter"
)

func newValidateCmd(app *App) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an order context against the business rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			costing, err := flags.build()
			if err != nil {
				return err
			}
			result, err := app.Quotes.Validate(cmd.Context(), costing)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderValidation(result))
			if !result.Valid {
				return fmt.Errorf("%d validation error(s)", len(result.Errors))
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
