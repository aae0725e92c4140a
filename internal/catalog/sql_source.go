package catalog

import (
	"context"
	"fmt"

	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/repository"
)

// SQLSource loads the catalog from the price_rows table.
type SQLSource struct {
	repo repository.PriceRowRepo
}

// NewSQLSource creates a SQLSource over the given repository.
func NewSQLSource(repo repository.PriceRowRepo) *SQLSource {
	return &SQLSource{repo: repo}
}

func (s *SQLSource) Load(ctx context.Context) (*Snapshot, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	snap := NewSnapshot(rows)
	if err := checkRequiredCategories(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// checkRequiredCategories rejects a catalog that cannot price any order at
// all. Customization may legitimately be empty (a catalog of undecorated
// caps); base product and delivery prices are never defaulted, so empty
// tables there are a load failure. Missing accessory or service rows fail
// later, at assembly, and only for orders that ask for them.
func checkRequiredCategories(snap *Snapshot) error {
	for _, c := range []domain.Category{
		domain.CategoryBaseProduct,
		domain.CategoryDelivery,
	} {
		if len(snap.RowsByCategory(c)) == 0 {
			return fmt.Errorf("catalog has no %s rows", c)
		}
	}
	return nil
}
