package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/repository"
	"github.com/brimline/capquote/internal/testutil"
)

func TestPriceRowUpsertAndGet(t *testing.T) {
	repo := repository.NewSQLitePriceRowRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	row := domain.PriceRow{
		Name:     "Canvas",
		Category: domain.CategoryPremiumFabric,
		Prices: map[int]decimal.Decimal{
			48:  decimal.RequireFromString("0.50"),
			576: decimal.RequireFromString("0.40"),
		},
	}
	require.NoError(t, repo.Upsert(ctx, row))

	loaded, err := repo.Get(ctx, domain.CategoryPremiumFabric, "Canvas")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	p48, ok := loaded.PriceAt(48)
	require.True(t, ok)
	assert.True(t, p48.Equal(decimal.RequireFromString("0.50")))

	// Breakpoints never written stay absent, not zero.
	_, ok = loaded.PriceAt(144)
	assert.False(t, ok)
}

func TestPriceRowGetCaseInsensitive(t *testing.T) {
	repo := repository.NewSQLitePriceRowRepo(testutil.NewSeededTestDB(t))

	loaded, err := repo.Get(context.Background(), domain.CategoryBaseProduct, "standard cap")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Standard Cap", loaded.Name)
}

func TestPriceRowGetMissing(t *testing.T) {
	repo := repository.NewSQLitePriceRowRepo(testutil.NewTestDB(t))

	loaded, err := repo.Get(context.Background(), domain.CategoryAccessory, "Nope")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPriceRowUpsertOverwrites(t *testing.T) {
	repo := repository.NewSQLitePriceRowRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	row := domain.PriceRow{
		Name:     "Sticker",
		Category: domain.CategoryAccessory,
		Prices:   map[int]decimal.Decimal{48: decimal.RequireFromString("0.08")},
	}
	require.NoError(t, repo.Upsert(ctx, row))

	row.Prices[48] = decimal.RequireFromString("0.10")
	require.NoError(t, repo.Upsert(ctx, row))

	loaded, err := repo.Get(ctx, domain.CategoryAccessory, "Sticker")
	require.NoError(t, err)
	p, _ := loaded.PriceAt(48)
	assert.True(t, p.Equal(decimal.RequireFromString("0.10")))
}

func TestPriceRowListByCategory(t *testing.T) {
	repo := repository.NewSQLitePriceRowRepo(testutil.NewSeededTestDB(t))

	rows, err := repo.ListByCategory(context.Background(), domain.CategoryDelivery)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Equal(t, domain.CategoryDelivery, r.Category)
	}
}

func TestPriceRowListAllAndDeleteAll(t *testing.T) {
	repo := repository.NewSQLitePriceRowRepo(testutil.NewSeededTestDB(t))
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	require.NoError(t, repo.DeleteAll(ctx))

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
