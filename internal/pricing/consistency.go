package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brimline/capquote/internal/domain"
)

// Discrepancy is one category whose cost differs between two breakdowns
// beyond the allowed tolerance.
type Discrepancy struct {
	Category domain.Category
	Expected decimal.Decimal
	Actual   decimal.Decimal
	DeltaPct float64
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: expected %s, got %s (%.2f%% off)",
		d.Category, d.Expected, d.Actual, d.DeltaPct)
}

// ConsistencyReport is the outcome of comparing two breakdowns.
type ConsistencyReport struct {
	Consistent    bool
	Discrepancies []Discrepancy
}

// grandTotal is the pseudo-category under which the totals are compared.
const grandTotal = domain.Category("total")

// CompareBreakdowns checks two independently computed breakdowns for numeric
// agreement within tolerancePct. Every category is compared, then the grand
// totals. Matching zeroes are consistent; a zero against a non-zero is
// reported as a full 100% delta.
func CompareBreakdowns(expected, actual domain.CostBreakdownResult, tolerancePct float64) ConsistencyReport {
	report := ConsistencyReport{Consistent: true}

	expTotals := expected.CategoryTotals()
	actTotals := actual.CategoryTotals()
	for _, c := range domain.Categories {
		compareCategory(&report, c, expTotals[c], actTotals[c], tolerancePct)
	}
	compareCategory(&report, grandTotal, expected.TotalCost, actual.TotalCost, tolerancePct)
	return report
}

func compareCategory(report *ConsistencyReport, c domain.Category, exp, act decimal.Decimal, tolerancePct float64) {
	delta := deltaPct(exp, act)
	if delta > tolerancePct {
		report.Consistent = false
		report.Discrepancies = append(report.Discrepancies, Discrepancy{
			Category: c,
			Expected: exp,
			Actual:   act,
			DeltaPct: delta,
		})
	}
}

func deltaPct(exp, act decimal.Decimal) float64 {
	if exp.Equal(act) {
		return 0
	}
	if exp.IsZero() || act.IsZero() {
		return 100
	}
	diff := exp.Sub(act).Abs()
	base := exp.Abs()
	pct, _ := diff.Div(base).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
