package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brimline/capquote/internal/cli/formatter"
)

func newSuggestCmd(app *App) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show cost-saving options for an order context",
		RunE: func(cmd *cobra.Command, args []string) error {
			costing, err := flags.build()
			if err != nil {
				return err
			}
			suggestions, err := app.Quotes.Suggest(cmd.Context(), costing)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderSuggestions(suggestions))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
