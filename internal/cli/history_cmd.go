package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brimline/capquote/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	var id string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != "" {
				quote, err := app.Quotes.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if quote == nil {
					return fmt.Errorf("quote not found: %s", id)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderQuote(quote))
				return nil
			}

			quotes, err := app.Quotes.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderQuoteSummaries(quotes))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of quotes to show")
	cmd.Flags().StringVar(&id, "id", "", "show one quote in full")
	return cmd
}
