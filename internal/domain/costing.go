package domain

import "strings"

// DecorationRequest is one placement of branding on the cap. A request with a
// non-empty Components list is composite: its price is the sum of the named
// customization rows. Otherwise Type alone drives decomposition.
type DecorationRequest struct {
	Type        string
	Components  []string
	Size        Size
	Position    Position
	Application ApplicationMethod
}

// IsComposite reports whether the request carries an explicit component list.
func (d DecorationRequest) IsComposite() bool {
	return len(d.Components) > 0
}

// MissingFields lists required fields the request leaves empty.
func (d DecorationRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.Type) == "" && !d.IsComposite() {
		missing = append(missing, "type")
	}
	if d.Size == "" {
		missing = append(missing, "size")
	}
	if d.Position == "" {
		missing = append(missing, "position")
	}
	if d.Application == "" {
		missing = append(missing, "application")
	}
	return missing
}

// CostingContext is the full input to the pricing engine, produced by the
// configurator or by the requirement extractor.
type CostingContext struct {
	Quantity    int
	ProductTier string // empty means DefaultProductTier
	Decorations []DecorationRequest
	FabricType  string // possibly a dual descriptor "A/B"
	ClosureType string
	Accessories []string
	Services    []string

	DeliveryMethod DeliveryMethod

	// PreviousOrderRef, when non-empty, identifies a prior order whose
	// tooling is reused; it waives mold charges.
	PreviousOrderRef string

	// CombinedShipmentQuantity, when above Quantity, is used only for the
	// delivery price-tier lookup (order bundled with others). Billing stays
	// at Quantity units.
	CombinedShipmentQuantity int
}

// Tier returns the product tier, defaulted.
func (c CostingContext) Tier() string {
	if strings.TrimSpace(c.ProductTier) == "" {
		return DefaultProductTier
	}
	return c.ProductTier
}

// ShipmentQuantity returns the quantity used for delivery tier lookup.
func (c CostingContext) ShipmentQuantity() int {
	if c.CombinedShipmentQuantity > c.Quantity {
		return c.CombinedShipmentQuantity
	}
	return c.Quantity
}

// FabricHalves splits a dual fabric descriptor "A/B" into its halves,
// de-duplicating when both halves name the same fabric. A single fabric
// returns one element; an empty fabric returns none.
func (c CostingContext) FabricHalves() []string {
	f := strings.TrimSpace(c.FabricType)
	if f == "" {
		return nil
	}
	parts := strings.Split(f, "/")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		dup := false
		for _, seen := range out {
			if strings.EqualFold(seen, p) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
