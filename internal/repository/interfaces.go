package repository

import (
	"context"

	"github.com/brimline/capquote/internal/domain"
)

type PriceRowRepo interface {
	Upsert(ctx context.Context, row domain.PriceRow) error
	Get(ctx context.Context, category domain.Category, name string) (*domain.PriceRow, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.PriceRow, error)
	ListAll(ctx context.Context) ([]domain.PriceRow, error)
	DeleteAll(ctx context.Context) error
}

type QuoteRepo interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Quote, error)
	Delete(ctx context.Context, id string) error
}
