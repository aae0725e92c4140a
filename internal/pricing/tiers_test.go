package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/testutil"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		quantity, want int
	}{
		{48, 48}, {143, 48}, {144, 144}, {575, 144}, {576, 576},
		{1151, 576}, {1152, 1152}, {2879, 1152}, {2880, 2880},
		{9999, 2880}, {10000, 10000}, {19999, 10000}, {20000, 20000},
		{50000, 20000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.quantity), "quantity %d", tt.quantity)
	}
}

func TestNextTier(t *testing.T) {
	assert.Equal(t, 144, NextTier(48))
	assert.Equal(t, 144, NextTier(100))
	assert.Equal(t, 2880, NextTier(1152))
	assert.Equal(t, 0, NextTier(20000))
	assert.Equal(t, 0, NextTier(25000))
}

func TestResolveUnitPrice_TierBoundaries(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	row, ok := snap.Row(domain.CategoryBaseProduct, "Standard Cap")
	require.True(t, ok)

	at143, ok := ResolveUnitPrice(row, 143)
	require.True(t, ok)
	at144, ok := ResolveUnitPrice(row, 144)
	require.True(t, ok)

	assert.True(t, at144.LessThanOrEqual(at143),
		"crossing a tier boundary must never raise the unit price")
	assert.True(t, at144.Equal(dec("4.10")))
	assert.True(t, at143.Equal(dec("4.50")))
}

// Volume-discount monotonicity across every seeded row: for q1 < q2 in
// different tiers, unit price at q2 never exceeds unit price at q1.
func TestResolveUnitPrice_MonotoneAcrossSeed(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	quantities := []int{48, 143, 144, 576, 1152, 2880, 5000, 10000, 20000, 40000}

	for _, cat := range domain.Categories {
		for _, row := range snap.RowsByCategory(cat) {
			prev := decimal.Decimal{}
			havePrev := false
			for _, q := range quantities {
				p, ok := ResolveUnitPrice(row, q)
				if !ok {
					continue
				}
				if havePrev {
					assert.True(t, p.LessThanOrEqual(prev),
						"%s: price at %d (%s) exceeds earlier price (%s)", row.Name, q, p, prev)
				}
				prev, havePrev = p, true
			}
		}
	}
}

func TestResolveUnitPrice_PartialAvailability(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)

	// Rubber patches are not tooled below 144 units: at 48 no breakpoint at
	// or below the quantity is priced and the entry fallback is empty too.
	patch, ok := snap.Row(domain.CategoryCustomization, "Small Rubber Patch")
	require.True(t, ok)
	_, ok = ResolveUnitPrice(patch, 48)
	assert.False(t, ok, "specialty row must report unavailable, not crash")
	p, ok := ResolveUnitPrice(patch, 200)
	require.True(t, ok)
	assert.True(t, p.Equal(dec("1.05")))

	// Express has no bulk pricing; large orders resolve to the nearest
	// lower priced band instead of failing.
	express, ok := snap.Row(domain.CategoryDelivery, "Express")
	require.True(t, ok)
	p, ok = ResolveUnitPrice(express, 5000)
	require.True(t, ok)
	assert.True(t, p.Equal(dec("1.10")))
}

func TestResolveUnitPrice_ZeroIsUnavailable(t *testing.T) {
	row := domain.PriceRow{
		Name:     "Comped Sticker",
		Category: domain.CategoryAccessory,
		Prices:   map[int]decimal.Decimal{48: decimal.Zero, 144: dec("0.05")},
	}
	p, ok := ResolveUnitPrice(row, 200)
	require.True(t, ok)
	assert.True(t, p.Equal(dec("0.05")))

	_, ok = ResolveUnitPrice(row, 48)
	assert.False(t, ok, "a zero price point is treated as not offered")
}

// Quantities between 2880 and 10000 must price from the 2880 column, never
// from the 10000 column.
func TestResolveUnitPrice_NoTierOverlap(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	row, ok := snap.Row(domain.CategoryBaseProduct, "Standard Cap")
	require.True(t, ok)

	p, ok := ResolveUnitPrice(row, 9999)
	require.True(t, ok)
	assert.True(t, p.Equal(dec("3.30")), "9999 units must use the 2880 breakpoint")

	p, ok = ResolveUnitPrice(row, 10000)
	require.True(t, ok)
	assert.True(t, p.Equal(dec("3.10")))
}
