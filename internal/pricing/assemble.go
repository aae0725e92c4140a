package pricing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/domain"
)

// Assembler orchestrates the per-category calculators into one itemized
// breakdown. It is pure given a snapshot: identical inputs produce identical
// results, and nothing is cached or mutated between calls.
type Assembler struct {
	logger *slog.Logger
}

// NewAssembler creates an Assembler. A nil logger discards degradation
// warnings.
func NewAssembler(logger *slog.Logger) *Assembler {
	return &Assembler{logger: logger}
}

// preValidate collects the fail-fast violations that make a quote
// untrustworthy rather than merely incomplete.
func preValidate(ctx domain.CostingContext) ValidationErrors {
	var errs ValidationErrors
	if ctx.Quantity < domain.MinOrderQuantity {
		errs = append(errs, &ValidationError{
			Field:  "quantity",
			Reason: fmt.Sprintf("minimum order is %d units, got %d", domain.MinOrderQuantity, ctx.Quantity),
		})
	}

	seen := map[domain.Position]bool{}
	for i, d := range ctx.Decorations {
		if missing := d.MissingFields(); len(missing) > 0 {
			errs = append(errs, &ValidationError{
				Field:  fmt.Sprintf("decorations[%d]", i),
				Reason: "missing " + strings.Join(missing, ", "),
			})
			continue
		}
		if seen[d.Position] {
			errs = append(errs, &ValidationError{
				Field:  fmt.Sprintf("decorations[%d].position", i),
				Reason: fmt.Sprintf("position %s already has a decoration", d.Position),
			})
		}
		seen[d.Position] = true
	}

	if domain.FreightMethods[ctx.DeliveryMethod] && ctx.ShipmentQuantity() < domain.FreightMinQuantity {
		errs = append(errs, &ValidationError{
			Field: "deliveryMethod",
			Reason: fmt.Sprintf("%s requires at least %d units, got %d",
				ctx.DeliveryMethod, domain.FreightMinQuantity, ctx.ShipmentQuantity()),
		})
	}
	return errs
}

// Assemble validates the context and computes the full cost breakdown.
// Category totals always sum exactly to TotalCost.
func (a *Assembler) Assemble(snap *catalog.Snapshot, ctx domain.CostingContext) (*domain.CostBreakdownResult, error) {
	if errs := preValidate(ctx); len(errs) > 0 {
		return nil, errs
	}

	result := &domain.CostBreakdownResult{TotalUnits: ctx.Quantity}
	qty := decimal.NewFromInt(int64(ctx.Quantity))

	base, err := a.baseProduct(snap, ctx)
	if err != nil {
		return nil, err
	}
	result.BaseProduct = base

	for _, req := range ctx.Decorations {
		result.Decorations = append(result.Decorations, DecomposeLogo(snap, req, ctx.Quantity, a.logger)...)

		if decision := ResolveMoldCharge(snap, ctx, req); decision.Applies {
			result.MoldCharges = append(result.MoldCharges, MoldLineItem(req, decision))
		}
	}

	result.Fabrics = a.fabricLines(snap, ctx, qty)
	result.Closure = a.closureLine(snap, ctx, qty)

	accessories, err := a.accessoryLines(snap, ctx, qty)
	if err != nil {
		return nil, err
	}
	result.Accessories = accessories

	delivery, err := a.deliveryLine(snap, ctx, qty)
	if err != nil {
		return nil, err
	}
	result.Delivery = delivery

	result.Services = a.serviceLines(snap, ctx)

	result.TotalCost = result.SumCategories()
	return result, nil
}

func (a *Assembler) baseProduct(snap *catalog.Snapshot, ctx domain.CostingContext) (domain.CostLineItem, error) {
	tier := ctx.Tier()
	row, ok := snap.Row(domain.CategoryBaseProduct, tier)
	if !ok {
		return domain.CostLineItem{}, &ValidationError{
			Field:  "productTier",
			Reason: fmt.Sprintf("unknown product %q", tier),
		}
	}
	price, ok := ResolveUnitPrice(row, ctx.Quantity)
	if !ok {
		return domain.CostLineItem{}, &ValidationError{
			Field:  "productTier",
			Reason: fmt.Sprintf("%q is not offered at %d units", tier, ctx.Quantity),
		}
	}
	return domain.CostLineItem{
		Name:      tier,
		UnitPrice: price,
		Quantity:  ctx.Quantity,
		TotalCost: price.Mul(decimal.NewFromInt(int64(ctx.Quantity))),
		Details:   fmt.Sprintf("%d units at tier %d pricing", ctx.Quantity, TierFor(ctx.Quantity)),
	}, nil
}

// fabricLines prices the premium-fabric surcharge, one line per half of a
// dual descriptor. Budget fabrics carry no line; unknown fabrics degrade to
// a logged skip so catalog drift never blocks a quote.
func (a *Assembler) fabricLines(snap *catalog.Snapshot, ctx domain.CostingContext, qty decimal.Decimal) []domain.CostLineItem {
	var lines []domain.CostLineItem
	for _, fabric := range ctx.FabricHalves() {
		if domain.BudgetFabrics[fabric] {
			continue
		}
		row, ok := snap.Row(domain.CategoryPremiumFabric, fabric)
		if !ok {
			a.warn("fabric_unpriced", "fabric", fabric)
			continue
		}
		price, ok := ResolveUnitPrice(row, ctx.Quantity)
		if !ok {
			a.warn("fabric_unavailable", "fabric", fabric, "quantity", ctx.Quantity)
			continue
		}
		lines = append(lines, domain.CostLineItem{
			Name:      row.Name + " Fabric",
			UnitPrice: price,
			Quantity:  ctx.Quantity,
			TotalCost: price.Mul(qty),
			Details:   fmt.Sprintf("premium fabric surcharge (%s)", row.Name),
		})
	}
	return lines
}

func (a *Assembler) closureLine(snap *catalog.Snapshot, ctx domain.CostingContext, qty decimal.Decimal) *domain.CostLineItem {
	closure := strings.TrimSpace(ctx.ClosureType)
	if closure == "" || domain.BudgetClosures[closure] {
		return nil
	}
	row, ok := snap.Row(domain.CategoryPremiumClosure, closure)
	if !ok {
		a.warn("closure_unpriced", "closure", closure)
		return nil
	}
	price, ok := ResolveUnitPrice(row, ctx.Quantity)
	if !ok {
		a.warn("closure_unavailable", "closure", closure, "quantity", ctx.Quantity)
		return nil
	}
	return &domain.CostLineItem{
		Name:      row.Name + " Closure",
		UnitPrice: price,
		Quantity:  ctx.Quantity,
		TotalCost: price.Mul(qty),
		Details:   fmt.Sprintf("premium closure surcharge (%s)", row.Name),
	}
}

// accessoryLines prices each requested accessory. Accessories are committed
// line items: one that cannot be priced aborts the quote instead of
// silently shrinking it.
func (a *Assembler) accessoryLines(snap *catalog.Snapshot, ctx domain.CostingContext, qty decimal.Decimal) ([]domain.CostLineItem, error) {
	var lines []domain.CostLineItem
	for _, name := range ctx.Accessories {
		row, ok := snap.Row(domain.CategoryAccessory, name)
		if !ok {
			return nil, &ValidationError{
				Field:  "accessories",
				Reason: fmt.Sprintf("accessory %q cannot be priced", name),
			}
		}
		price, ok := ResolveUnitPrice(row, ctx.Quantity)
		if !ok {
			return nil, &ValidationError{
				Field:  "accessories",
				Reason: fmt.Sprintf("accessory %q is not offered at %d units", name, ctx.Quantity),
			}
		}
		lines = append(lines, domain.CostLineItem{
			Name:      row.Name,
			UnitPrice: price,
			Quantity:  ctx.Quantity,
			TotalCost: price.Mul(qty),
		})
	}
	return lines, nil
}

// deliveryLine prices shipping. The price tier may be looked up at a larger
// combined shipment quantity when this order is bundled with others, but the
// order is still billed for its own unit count only.
func (a *Assembler) deliveryLine(snap *catalog.Snapshot, ctx domain.CostingContext, qty decimal.Decimal) (*domain.CostLineItem, error) {
	method := domain.DeliveryMethod(domain.CoalesceStr(string(ctx.DeliveryMethod), string(domain.DeliveryRegular)))
	row, ok := snap.Row(domain.CategoryDelivery, string(method))
	if !ok {
		return nil, &ValidationError{
			Field:  "deliveryMethod",
			Reason: fmt.Sprintf("unknown delivery method %q", method),
		}
	}
	lookupQty := ctx.ShipmentQuantity()
	price, ok := ResolveUnitPrice(row, lookupQty)
	if !ok {
		return nil, &ValidationError{
			Field:  "deliveryMethod",
			Reason: fmt.Sprintf("%s is not offered at %d units", method, lookupQty),
		}
	}
	details := fmt.Sprintf("%d units via %s", ctx.Quantity, method)
	if lookupQty > ctx.Quantity {
		details = fmt.Sprintf("%d units via %s, priced at combined shipment volume %d", ctx.Quantity, method, lookupQty)
	}
	return &domain.CostLineItem{
		Name:      string(method) + " Delivery",
		UnitPrice: price,
		Quantity:  ctx.Quantity,
		TotalCost: price.Mul(qty),
		Details:   details,
	}, nil
}

// serviceLines prices the flat-rate services. Services are not scaled by
// quantity; an unrecognized service is logged and skipped.
func (a *Assembler) serviceLines(snap *catalog.Snapshot, ctx domain.CostingContext) []domain.CostLineItem {
	var lines []domain.CostLineItem
	for _, name := range ctx.Services {
		row, ok := snap.Row(domain.CategoryService, name)
		if !ok {
			a.warn("service_unpriced", "service", name)
			continue
		}
		price, ok := ResolveUnitPrice(row, ctx.Quantity)
		if !ok {
			a.warn("service_unavailable", "service", name, "quantity", ctx.Quantity)
			continue
		}
		lines = append(lines, domain.CostLineItem{
			Name:      row.Name,
			UnitPrice: price,
			Quantity:  1,
			TotalCost: price,
			Details:   "flat-rate service",
		})
	}
	return lines
}

func (a *Assembler) warn(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}
