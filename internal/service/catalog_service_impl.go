package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/db"
	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/repository"
)

type catalogService struct {
	cache    *catalog.Cache
	uow      db.UnitOfWork
	rows     repository.PriceRowRepo
	database db.DBTX
	observer UseCaseObserver
}

// NewCatalogService manages price book contents. The cache is invalidated
// after every write so the next quote sees the new prices.
func NewCatalogService(cache *catalog.Cache, uow db.UnitOfWork, rows repository.PriceRowRepo, database db.DBTX, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		cache:    cache,
		uow:      uow,
		rows:     rows,
		database: database,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) ListRows(ctx context.Context, category domain.Category) ([]domain.PriceRow, error) {
	return s.rows.ListByCategory(ctx, category)
}

func (s *catalogService) ListAll(ctx context.Context) ([]domain.PriceRow, error) {
	return s.rows.ListAll(ctx)
}

func (s *catalogService) ImportCSV(ctx context.Context, data []byte) (count int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "catalog-import",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"row_count": count},
		})
	}()

	parsed, err := catalog.ParseCSV(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("parsing price book: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRows := repository.NewSQLitePriceRowRepo(tx)
		if err := txRows.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing price book: %w", err)
		}
		for _, row := range parsed {
			if err := txRows.Upsert(ctx, row); err != nil {
				return fmt.Errorf("storing row '%s': %w", row.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate()
	return len(parsed), nil
}

func (s *catalogService) Seed(ctx context.Context) error {
	if err := db.SeedPriceBook(ctx, s.database); err != nil {
		return fmt.Errorf("seeding price book: %w", err)
	}
	s.cache.Invalidate()
	return nil
}
