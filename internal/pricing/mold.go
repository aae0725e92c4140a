package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/domain"
)

// moldTypes are the decoration types that need one-time tooling.
var moldTypes = map[string]bool{
	TypeRubberPatch:  true,
	TypeLeatherPatch: true,
}

// MoldDecision is the outcome of mold-charge resolution for one decoration.
type MoldDecision struct {
	Applies bool
	Waived  bool
	Reason  string
	Amount  decimal.Decimal
}

// requiresMold reports whether the request's type, or any of its components,
// is a tooled patch type.
func requiresMold(req domain.DecorationRequest) bool {
	if moldTypes[CanonicalType(req.Type)] {
		return true
	}
	for _, c := range req.Components {
		for t := range moldTypes {
			if strings.Contains(strings.ToLower(c), strings.ToLower(t)) {
				return true
			}
		}
	}
	return false
}

// ResolveMoldCharge decides whether a one-time tooling charge applies to a
// decoration request and whether it is waived. Waiver precedence: a prior
// order reusing its mold wins over a volume waiver; otherwise the charge is
// the flat size-scaled amount from the mold_charge table, independent of
// order quantity.
func ResolveMoldCharge(snap *catalog.Snapshot, ctx domain.CostingContext, req domain.DecorationRequest) MoldDecision {
	if !requiresMold(req) {
		return MoldDecision{}
	}

	if ref := strings.TrimSpace(ctx.PreviousOrderRef); ref != "" {
		return MoldDecision{
			Applies: true,
			Waived:  true,
			Reason:  fmt.Sprintf("mold on file from previous order %s", ref),
		}
	}
	if ctx.Quantity >= domain.MoldWaiverQuantity {
		return MoldDecision{
			Applies: true,
			Waived:  true,
			Reason:  fmt.Sprintf("waived at %d units (threshold %d)", ctx.Quantity, domain.MoldWaiverQuantity),
		}
	}

	amount := decimal.Zero
	rowName := fmt.Sprintf("%s Mold Charge", req.Size)
	if row, ok := snap.Row(domain.CategoryMoldCharge, rowName); ok {
		if p, ok := ResolveUnitPrice(row, ctx.Quantity); ok {
			amount = p
		}
	}
	return MoldDecision{Applies: true, Amount: amount}
}

// MoldLineItem renders a decision into a breakdown line for one decoration.
func MoldLineItem(req domain.DecorationRequest, d MoldDecision) domain.CostLineItem {
	item := domain.CostLineItem{
		Name:     fmt.Sprintf("Mold Charge (%s @ %s)", CanonicalType(req.Type), req.Position),
		Quantity: 1,
	}
	if d.Waived {
		item.Waived = true
		item.WaiverReason = d.Reason
		item.Details = "waived: " + d.Reason
		return item
	}
	item.UnitPrice = d.Amount
	item.TotalCost = d.Amount
	item.Details = fmt.Sprintf("one-time %s size tooling", req.Size)
	return item
}
