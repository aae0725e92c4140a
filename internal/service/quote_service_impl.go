package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/db"
	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/pricing"
	"github.com/brimline/capquote/internal/repository"
	"github.com/brimline/capquote/internal/rules"
)

type quoteService struct {
	catalog   *catalog.Cache
	uow       db.UnitOfWork
	quotes    repository.QuoteRepo
	assembler *pricing.Assembler
	validator *rules.Validator
	observer  UseCaseObserver
}

// NewQuoteService wires the quoting engine to its catalog and storage.
func NewQuoteService(cache *catalog.Cache, uow db.UnitOfWork, quotes repository.QuoteRepo, logger *slog.Logger, observers ...UseCaseObserver) QuoteService {
	return &quoteService{
		catalog:   cache,
		uow:       uow,
		quotes:    quotes,
		assembler: pricing.NewAssembler(logger),
		validator: rules.NewValidator(),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *quoteService) Quote(ctx context.Context, costing domain.CostingContext) (quote *domain.Quote, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"quantity": costing.Quantity}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "quote",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	snap, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	if result := s.validator.Validate(snap, costing); !result.Valid {
		return nil, fmt.Errorf("validation failed: %s", result.Errors[0])
	}

	breakdown, err := s.assembler.Assemble(snap, costing)
	if err != nil {
		return nil, err
	}

	quote = &domain.Quote{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Context:   costing,
		Result:    *breakdown,
	}
	fields["quote_id"] = quote.ID
	fields["total_cost"] = breakdown.TotalCost.String()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteQuoteRepo(tx).Create(ctx, quote); err != nil {
			return fmt.Errorf("storing quote: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *quoteService) Preview(ctx context.Context, costing domain.CostingContext) (*domain.CostBreakdownResult, error) {
	snap, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if result := s.validator.Validate(snap, costing); !result.Valid {
		return nil, fmt.Errorf("validation failed: %s", result.Errors[0])
	}
	return s.assembler.Assemble(snap, costing)
}

func (s *quoteService) Get(ctx context.Context, id string) (*domain.Quote, error) {
	return s.quotes.GetByID(ctx, id)
}

func (s *quoteService) List(ctx context.Context, limit int) ([]*domain.Quote, error) {
	return s.quotes.ListRecent(ctx, limit)
}

func (s *quoteService) Validate(ctx context.Context, costing domain.CostingContext) (rules.ValidationResult, error) {
	snap, err := s.catalog.Load(ctx)
	if err != nil {
		return rules.ValidationResult{}, fmt.Errorf("loading catalog: %w", err)
	}
	return s.validator.Validate(snap, costing), nil
}

func (s *quoteService) Suggest(ctx context.Context, costing domain.CostingContext) ([]string, error) {
	snap, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return rules.Suggest(snap, costing), nil
}

func (s *quoteService) CheckParity(ctx context.Context, a, b domain.CostingContext, tolerancePct float64) (*pricing.ConsistencyReport, error) {
	snap, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	expected, err := s.assembler.Assemble(snap, a)
	if err != nil {
		return nil, fmt.Errorf("assembling reference breakdown: %w", err)
	}
	actual, err := s.assembler.Assemble(snap, b)
	if err != nil {
		return nil, fmt.Errorf("assembling compared breakdown: %w", err)
	}
	report := pricing.CompareBreakdowns(*expected, *actual, tolerancePct)
	return &report, nil
}
