package service

import (
	"context"

	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/pricing"
	"github.com/brimline/capquote/internal/rules"
)

// QuoteService is the application-facing surface of the pricing engine:
// validate, price, persist, read back.
type QuoteService interface {
	// Quote validates the context, assembles the cost breakdown and stores
	// the result. Validation errors and assembly failures abort before
	// anything is written.
	Quote(ctx context.Context, costing domain.CostingContext) (*domain.Quote, error)

	// Preview assembles a breakdown without persisting it.
	Preview(ctx context.Context, costing domain.CostingContext) (*domain.CostBreakdownResult, error)

	Get(ctx context.Context, id string) (*domain.Quote, error)
	List(ctx context.Context, limit int) ([]*domain.Quote, error)

	// Validate runs the business rules without quoting.
	Validate(ctx context.Context, costing domain.CostingContext) (rules.ValidationResult, error)

	// Suggest returns cost-saving advice for the context.
	Suggest(ctx context.Context, costing domain.CostingContext) ([]string, error)

	// CheckParity prices both contexts and compares the breakdowns within
	// the given percentage tolerance.
	CheckParity(ctx context.Context, a, b domain.CostingContext, tolerancePct float64) (*pricing.ConsistencyReport, error)
}

// CatalogService manages the price book behind the quoting engine.
type CatalogService interface {
	ListRows(ctx context.Context, category domain.Category) ([]domain.PriceRow, error)
	ListAll(ctx context.Context) ([]domain.PriceRow, error)

	// ImportCSV replaces the price book with the parsed file contents in
	// one transaction and invalidates the catalog cache.
	ImportCSV(ctx context.Context, data []byte) (int, error)

	// Seed loads the factory default price book.
	Seed(ctx context.Context) error
}
