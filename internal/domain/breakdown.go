package domain

import "github.com/shopspring/decimal"

// CostLineItem is one priced line of a breakdown.
type CostLineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	TotalCost decimal.Decimal
	Details   string

	// Baseline48 is the entry-tier (48-unit) unit price for the same
	// components, set on decoration lines so callers can display savings
	// against the entry tier.
	Baseline48 decimal.Decimal

	// Mold-charge fields.
	Waived       bool
	WaiverReason string
}

// CostBreakdownResult is the itemized output of the assembler, one slice of
// line items per category plus the grand total.
type CostBreakdownResult struct {
	BaseProduct CostLineItem
	Decorations []CostLineItem
	Fabrics     []CostLineItem
	Closure     *CostLineItem
	Accessories []CostLineItem
	Delivery    *CostLineItem
	Services    []CostLineItem
	MoldCharges []CostLineItem

	TotalUnits int
	TotalCost  decimal.Decimal
}

func sumLines(items []CostLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalCost)
	}
	return total
}

// CategoryTotals returns the summed cost per category. The grand-total
// invariant is that TotalCost equals the sum of these values; the consistency
// checker compares them pairwise between breakdowns.
func (r CostBreakdownResult) CategoryTotals() map[Category]decimal.Decimal {
	totals := map[Category]decimal.Decimal{
		CategoryBaseProduct:    r.BaseProduct.TotalCost,
		CategoryCustomization:  sumLines(r.Decorations),
		CategoryPremiumFabric:  sumLines(r.Fabrics),
		CategoryPremiumClosure: decimal.Zero,
		CategoryAccessory:      sumLines(r.Accessories),
		CategoryDelivery:       decimal.Zero,
		CategoryService:        sumLines(r.Services),
		CategoryMoldCharge:     sumLines(r.MoldCharges),
	}
	if r.Closure != nil {
		totals[CategoryPremiumClosure] = r.Closure.TotalCost
	}
	if r.Delivery != nil {
		totals[CategoryDelivery] = r.Delivery.TotalCost
	}
	return totals
}

// SumCategories recomputes the grand total from the category totals.
func (r CostBreakdownResult) SumCategories() decimal.Decimal {
	total := decimal.Zero
	for _, c := range Categories {
		total = total.Add(r.CategoryTotals()[c])
	}
	return total
}

// AllLines returns every line item in display order.
func (r CostBreakdownResult) AllLines() []CostLineItem {
	lines := []CostLineItem{r.BaseProduct}
	lines = append(lines, r.Decorations...)
	lines = append(lines, r.Fabrics...)
	if r.Closure != nil {
		lines = append(lines, *r.Closure)
	}
	lines = append(lines, r.Accessories...)
	if r.Delivery != nil {
		lines = append(lines, *r.Delivery)
	}
	lines = append(lines, r.Services...)
	lines = append(lines, r.MoldCharges...)
	return lines
}
