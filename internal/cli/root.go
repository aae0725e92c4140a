package cli

import (
	"github.com/spf13/cobra"

	"github.com/brimline/capquote/internal/extract"
	"github.com/brimline/capquote/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Quotes    service.QuoteService
	Catalog   service.CatalogService
	Extractor *extract.Extractor
}

// NewRootCmd creates the top-level "capquote" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "capquote",
		Short:         "Quote custom cap orders from a tiered price book",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newQuoteCmd(app),
		newExtractCmd(app),
		newValidateCmd(app),
		newSuggestCmd(app),
		newCatalogCmd(app),
		newHistoryCmd(app),
	)

	return root
}
