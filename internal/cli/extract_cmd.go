package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brimline/capquote/internal/cli/formatter"
	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/extract"
)

func newExtractCmd(app *App) *cobra.Command {
	var historyFile string
	var quoteIt bool

	cmd := &cobra.Command{
		Use:   "extract <text>",
		Short: "Parse order requirements from free-form text",
		Long: "Parses quantity, fabric, closure, decorations and accessories from a " +
			"message. With --history, unstated fields are carried over from the " +
			"previous conversation turns.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			var history []extract.Turn
			if historyFile != "" {
				data, err := os.ReadFile(historyFile)
				if err != nil {
					return fmt.Errorf("reading history file: %w", err)
				}
				if err := json.Unmarshal(data, &history); err != nil {
					return fmt.Errorf("decoding history file: %w", err)
				}
			}

			req := app.Extractor.Extract(text, history)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderRequirements(req))

			if !quoteIt {
				return nil
			}
			costing := req.Apply(domain.CostingContext{
				DeliveryMethod: domain.DeliveryRegular,
			})
			quote, err := app.Quotes.Quote(cmd.Context(), costing)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderQuote(quote))
			return nil
		},
	}

	cmd.Flags().StringVar(&historyFile, "history", "", "JSON transcript of prior {role, content} turns")
	cmd.Flags().BoolVar(&quoteIt, "quote", false, "price the extracted requirements and store the quote")
	return cmd
}
