package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/brimline/capquote/internal/domain"
)

// TierFor returns the nominal quantity tier: the largest breakpoint not
// exceeding the quantity. Quantities below the smallest breakpoint report
// the smallest breakpoint; callers validate the minimum before pricing.
func TierFor(quantity int) int {
	tier := domain.Breakpoints[0]
	for _, bp := range domain.Breakpoints {
		if bp <= quantity {
			tier = bp
		}
	}
	return tier
}

// NextTier returns the smallest breakpoint strictly above the quantity, or
// 0 when the quantity already sits in the top tier.
func NextTier(quantity int) int {
	for _, bp := range domain.Breakpoints {
		if bp > quantity {
			return bp
		}
	}
	return 0
}

// priceValid is the conservative validity test for a price point: present
// and strictly positive. A cell holding exactly zero is treated the same as
// "not offered"; the row model keeps the two distinguishable should free
// items ever become legitimate.
func priceValid(p decimal.Decimal, present bool) bool {
	return present && p.IsPositive()
}

// ResolveUnitPrice resolves the applicable unit price for a quantity against
// a price row. Breakpoints are walked from highest to lowest; the first
// breakpoint at or below the quantity with a valid price wins. Rows offered
// only in certain volume bands therefore resolve to the nearest lower band
// rather than failing. When no breakpoint at or below the quantity is
// priced, the entry (48-unit) price is the fallback; if that too is missing
// the item is unavailable at this quantity and the second return is false.
func ResolveUnitPrice(row domain.PriceRow, quantity int) (decimal.Decimal, bool) {
	for i := len(domain.Breakpoints) - 1; i >= 0; i-- {
		bp := domain.Breakpoints[i]
		if bp > quantity {
			continue
		}
		if p, ok := row.PriceAt(bp); priceValid(p, ok) {
			return p, true
		}
	}
	if p, ok := row.PriceAt(domain.Breakpoints[0]); priceValid(p, ok) {
		return p, true
	}
	return decimal.Decimal{}, false
}
