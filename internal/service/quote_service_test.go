package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/repository"
	"github.com/brimline/capquote/internal/testutil"
)

func newTestQuoteService(t *testing.T) QuoteService {
	t.Helper()
	database := testutil.NewSeededTestDB(t)
	cache := catalog.NewCache(catalog.NewSQLSource(repository.NewSQLitePriceRowRepo(database)))
	return NewQuoteService(cache, testutil.NewTestUoW(database), repository.NewSQLiteQuoteRepo(database), nil)
}

func orderContext() domain.CostingContext {
	ctx := testutil.NewTestContext(576)
	ctx.Decorations = []domain.DecorationRequest{testutil.FrontLogo(domain.SizeLarge)}
	ctx.ClosureType = "Flexfit"
	ctx.Accessories = []string{"Hang Tag"}
	return ctx
}

func TestQuotePersistsAndReadsBack(t *testing.T) {
	svc := newTestQuoteService(t)

	quote, err := svc.Quote(context.Background(), orderContext())
	require.NoError(t, err)
	require.NotEmpty(t, quote.ID)
	assert.False(t, quote.CreatedAt.IsZero())
	assert.True(t, quote.Result.TotalCost.IsPositive())

	loaded, err := svc.Get(context.Background(), quote.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, quote.ID, loaded.ID)
	assert.True(t, quote.Result.TotalCost.Equal(loaded.Result.TotalCost))
	assert.Equal(t, 576, loaded.Context.Quantity)
}

func TestQuoteRejectsInvalidContext(t *testing.T) {
	svc := newTestQuoteService(t)

	ctx := orderContext()
	ctx.Quantity = 12

	_, err := svc.Quote(context.Background(), ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum order")

	quotes, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, quotes, "a rejected quote must not be persisted")
}

func TestQuoteListMostRecentFirst(t *testing.T) {
	svc := newTestQuoteService(t)

	first, err := svc.Quote(context.Background(), orderContext())
	require.NoError(t, err)
	ctx := orderContext()
	ctx.Quantity = 1152
	second, err := svc.Quote(context.Background(), ctx)
	require.NoError(t, err)

	quotes, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	ids := []string{quotes[0].ID, quotes[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestPreviewDoesNotPersist(t *testing.T) {
	svc := newTestQuoteService(t)

	breakdown, err := svc.Preview(context.Background(), orderContext())
	require.NoError(t, err)
	assert.True(t, breakdown.TotalCost.IsPositive())

	quotes, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestValidateAndSuggestPassThrough(t *testing.T) {
	svc := newTestQuoteService(t)

	ctx := orderContext()
	ctx.FabricType = "Unobtainium"

	result, err := svc.Validate(context.Background(), ctx)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)

	suggestions, err := svc.Suggest(context.Background(), orderContext())
	require.NoError(t, err)
	found := false
	for _, s := range suggestions {
		if strings.Contains(s, "Flexfit") {
			found = true
		}
	}
	assert.True(t, found, "premium closure should draw a budget suggestion")
}

func TestCheckParity(t *testing.T) {
	svc := newTestQuoteService(t)

	a := orderContext()
	b := orderContext()

	report, err := svc.CheckParity(context.Background(), a, b, 0.5)
	require.NoError(t, err)
	assert.True(t, report.Consistent)

	b.ClosureType = "Fitted"
	report, err = svc.CheckParity(context.Background(), a, b, 0.5)
	require.NoError(t, err)
	assert.False(t, report.Consistent)
	assert.NotEmpty(t, report.Discrepancies)
}
