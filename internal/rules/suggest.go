package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/pricing"
)

// tierBumpMaxPct is how far above the current quantity the next breakpoint
// may sit before a bump suggestion stops being worth making.
const tierBumpMaxPct = 10

// Suggest returns cost-saving advice for a context: budget substitutes for
// premium fabric and closure picks, a quantity bump when the next breakpoint
// is close, and a freight switch once the volume qualifies. Suggestions are
// advisory text, never applied automatically.
func Suggest(snap *catalog.Snapshot, ctx domain.CostingContext) []string {
	var out []string

	for _, fabric := range ctx.FabricHalves() {
		if domain.BudgetFabrics[fabric] {
			continue
		}
		if _, ok := snap.Row(domain.CategoryPremiumFabric, fabric); ok {
			out = append(out, fmt.Sprintf(
				"switch fabric %s to a budget fabric such as %s to remove the per-unit surcharge",
				fabric, domain.DefaultFabric))
		}
	}

	if closure := ctx.ClosureType; closure != "" && !domain.BudgetClosures[closure] {
		if _, ok := snap.Row(domain.CategoryPremiumClosure, closure); ok {
			out = append(out, fmt.Sprintf(
				"switch closure %s to a budget closure such as %s to remove the per-unit surcharge",
				closure, domain.DefaultClosure))
		}
	}

	if s := tierBumpSuggestion(ctx.Quantity); s != "" {
		out = append(out, s)
	}

	if ctx.ShipmentQuantity() >= domain.FreightMinQuantity && !domain.FreightMethods[ctx.DeliveryMethod] {
		out = append(out, fmt.Sprintf(
			"order qualifies for freight at %d+ units; sea or air freight is cheaper per unit than %s",
			domain.FreightMinQuantity, ctx.DeliveryMethod))
	}

	return out
}

// tierBumpSuggestion recommends rounding the order up when the next
// breakpoint is within tierBumpMaxPct above the current quantity, since the
// better unit pricing often outweighs the extra units.
func tierBumpSuggestion(quantity int) string {
	next := pricing.NextTier(quantity)
	if next == 0 || quantity <= 0 {
		return ""
	}
	limit := decimal.NewFromInt(int64(quantity)).
		Mul(decimal.NewFromInt(100 + tierBumpMaxPct)).
		Div(decimal.NewFromInt(100))
	if decimal.NewFromInt(int64(next)).GreaterThan(limit) {
		return ""
	}
	return fmt.Sprintf("increasing the order from %d to %d units reaches the next price tier", quantity, next)
}
