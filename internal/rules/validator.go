package rules

import (
	"fmt"
	"strings"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/domain"
)

// FieldError is an addressable validation failure, suitable for a form or a
// chat reply.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationResult separates hard errors (the context cannot be quoted) from
// advisory warnings (quote anyway, flag for review).
type ValidationResult struct {
	Valid    bool
	Errors   []FieldError
	Warnings []string
}

// Validator checks a costing context against the domain constraints and the
// loaded catalog.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the context. Hard errors: quantity below the platform
// minimum, freight below its mandated minimum, a delivery method the catalog
// cannot price, malformed or colliding decoration requests. Unrecognized
// fabric/closure/accessory/service names are warnings only, so catalog drift
// flags rather than rejects.
func (v *Validator) Validate(snap *catalog.Snapshot, ctx domain.CostingContext) ValidationResult {
	var result ValidationResult

	if ctx.Quantity < domain.MinOrderQuantity {
		result.Errors = append(result.Errors, FieldError{
			Field:  "quantity",
			Reason: fmt.Sprintf("minimum order is %d units, got %d", domain.MinOrderQuantity, ctx.Quantity),
		})
	}

	if domain.FreightMethods[ctx.DeliveryMethod] && ctx.ShipmentQuantity() < domain.FreightMinQuantity {
		result.Errors = append(result.Errors, FieldError{
			Field: "deliveryMethod",
			Reason: fmt.Sprintf("%s requires at least %d units, got %d",
				ctx.DeliveryMethod, domain.FreightMinQuantity, ctx.ShipmentQuantity()),
		})
	}

	// Delivery is a committed cost, so a method the catalog cannot price is
	// a hard error, the same as it is at assembly time. An empty method is
	// fine, it defaults to Regular.
	if method := strings.TrimSpace(string(ctx.DeliveryMethod)); method != "" {
		if _, ok := snap.Row(domain.CategoryDelivery, method); !ok {
			result.Errors = append(result.Errors, FieldError{
				Field:  "deliveryMethod",
				Reason: fmt.Sprintf("unknown delivery method %q", method),
			})
		}
	}

	seen := map[domain.Position]bool{}
	for i, d := range ctx.Decorations {
		if missing := d.MissingFields(); len(missing) > 0 {
			result.Errors = append(result.Errors, FieldError{
				Field:  fmt.Sprintf("decorations[%d]", i),
				Reason: "missing " + strings.Join(missing, ", "),
			})
			continue
		}
		if !domain.ValidPositions[d.Position] {
			result.Errors = append(result.Errors, FieldError{
				Field:  fmt.Sprintf("decorations[%d].position", i),
				Reason: fmt.Sprintf("unknown position %q", d.Position),
			})
			continue
		}
		if seen[d.Position] {
			result.Errors = append(result.Errors, FieldError{
				Field:  fmt.Sprintf("decorations[%d].position", i),
				Reason: fmt.Sprintf("position %s already has a decoration", d.Position),
			})
		}
		seen[d.Position] = true
	}

	result.Warnings = append(result.Warnings, v.nameWarnings(snap, ctx)...)
	result.Valid = len(result.Errors) == 0
	return result
}

func (v *Validator) nameWarnings(snap *catalog.Snapshot, ctx domain.CostingContext) []string {
	var warnings []string
	for _, fabric := range ctx.FabricHalves() {
		if domain.BudgetFabrics[fabric] {
			continue
		}
		if _, ok := snap.Row(domain.CategoryPremiumFabric, fabric); !ok {
			warnings = append(warnings, fmt.Sprintf("unrecognized fabric %q", fabric))
		}
	}
	if closure := strings.TrimSpace(ctx.ClosureType); closure != "" && !domain.BudgetClosures[closure] {
		if _, ok := snap.Row(domain.CategoryPremiumClosure, closure); !ok {
			warnings = append(warnings, fmt.Sprintf("unrecognized closure %q", closure))
		}
	}
	for _, name := range ctx.Accessories {
		if _, ok := snap.Row(domain.CategoryAccessory, name); !ok {
			warnings = append(warnings, fmt.Sprintf("unrecognized accessory %q", name))
		}
	}
	for _, name := range ctx.Services {
		if _, ok := snap.Row(domain.CategoryService, name); !ok {
			warnings = append(warnings, fmt.Sprintf("unrecognized service %q", name))
		}
	}
	return warnings
}
