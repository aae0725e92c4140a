package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brimline/capquote/internal/cli/formatter"
	"github.com/brimline/capquote/internal/domain"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the price book",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogImportCmd(app),
		newCatalogSeedCmd(app),
	)
	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List price book rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []domain.PriceRow
			var err error
			if category == "" {
				rows, err = app.Catalog.ListAll(cmd.Context())
			} else {
				cat := domain.Category(category)
				if !domain.ValidCategories[category] {
					return fmt.Errorf("unknown category %q", category)
				}
				rows, err = app.Catalog.ListRows(cmd.Context(), cat)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderPriceRows(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Replace the price book with a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			count, err := app.Catalog.ImportCSV(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d price rows\n", count)
			return nil
		},
	}
	return cmd
}

func newCatalogSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the factory default price book",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.Seed(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "price book seeded")
			return nil
		},
	}
}
