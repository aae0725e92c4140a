package testutil

import (
	"context"
	"testing"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/repository"
)

// NewTestSnapshot loads the factory price book into an in-memory database and
// returns the resulting catalog snapshot. Pricing tests run against the same
// tables the seeded binary would.
func NewTestSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()
	database := NewSeededTestDB(t)
	source := catalog.NewSQLSource(repository.NewSQLitePriceRowRepo(database))
	snap, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load test snapshot: %v", err)
	}
	return snap
}

// NewTestContext returns a minimal valid costing context that tests mutate
// as needed.
func NewTestContext(quantity int) domain.CostingContext {
	return domain.CostingContext{
		Quantity:       quantity,
		DeliveryMethod: domain.DeliveryRegular,
	}
}

// FrontLogo returns a plain front embroidery decoration request.
func FrontLogo(size domain.Size) domain.DecorationRequest {
	return domain.DecorationRequest{
		Type:        "Flat Embroidery",
		Size:        size,
		Position:    domain.PositionFront,
		Application: domain.ApplicationDirect,
	}
}
