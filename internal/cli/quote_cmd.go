package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brimline/capquote/internal/cli/formatter"
)

func newQuoteCmd(app *App) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price an order and store the quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			costing, err := flags.build()
			if err != nil {
				return err
			}

			// Surface advisory warnings even when the quote succeeds.
			validation, err := app.Quotes.Validate(cmd.Context(), costing)
			if err != nil {
				return err
			}
			for _, w := range validation.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.WarningLine(w))
			}

			quote, err := app.Quotes.Quote(cmd.Context(), costing)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderQuote(quote))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
