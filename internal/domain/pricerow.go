package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Breakpoints are the fixed quantity thresholds at which unit prices change,
// in ascending order. Tier resolution walks them from the high end.
var Breakpoints = []int{48, 144, 576, 1152, 2880, 10000, 20000}

// PriceRow is one named priced item. Prices is keyed by breakpoint; a missing
// key means the item is not offered at that volume, which is distinct from a
// present zero.
type PriceRow struct {
	Name     string
	Category Category
	Prices   map[int]decimal.Decimal
}

// PriceAt returns the price point at the given breakpoint, with presence.
func (r PriceRow) PriceAt(breakpoint int) (decimal.Decimal, bool) {
	p, ok := r.Prices[breakpoint]
	return p, ok
}

// MonotonicityViolation describes a pair of defined price points where the
// price increases with the breakpoint, breaking volume-discount monotonicity.
type MonotonicityViolation struct {
	Row            string
	LowBreakpoint  int
	HighBreakpoint int
	LowPrice       decimal.Decimal
	HighPrice      decimal.Decimal
}

func (v MonotonicityViolation) String() string {
	return fmt.Sprintf("%s: price at %d (%s) exceeds price at %d (%s)",
		v.Row, v.HighBreakpoint, v.HighPrice, v.LowBreakpoint, v.LowPrice)
}

// MonotonicityViolations reports every adjacent pair of defined price points
// that increases as the breakpoint grows. Gaps (undefined points) are skipped,
// not treated as violations.
func (r PriceRow) MonotonicityViolations() []MonotonicityViolation {
	var out []MonotonicityViolation
	prevBp := 0
	var prev decimal.Decimal
	havePrev := false
	for _, bp := range Breakpoints {
		p, ok := r.Prices[bp]
		if !ok {
			continue
		}
		if havePrev && p.GreaterThan(prev) {
			out = append(out, MonotonicityViolation{
				Row:            r.Name,
				LowBreakpoint:  prevBp,
				HighBreakpoint: bp,
				LowPrice:       prev,
				HighPrice:      p,
			})
		}
		prevBp, prev, havePrev = bp, p, true
	}
	return out
}
