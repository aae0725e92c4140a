package pricing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/domain"
)

// Canonical decoration type names as they appear in the customization table
// (prefixed by size, except the flat 3D surcharge row).
const (
	TypeFlatEmbroidery = "Flat Embroidery"
	Type3DEmbroidery   = "3D Embroidery"
	TypeRubberPatch    = "Rubber Patch"
	TypeLeatherPatch   = "Leather Patch"
	TypeWovenPatch     = "Woven Patch"
	TypePrintWovenPatch = "Print Woven Patch"
	TypeScreenPrint    = "Screen Print"
	TypeHeatTransfer   = "Heat Transfer"
)

// typeAliases normalizes the names buyers and upstream systems use to the
// canonical catalog type.
var typeAliases = map[string]string{
	"embroidery":        TypeFlatEmbroidery,
	"flat embroidery":   TypeFlatEmbroidery,
	"3d embroidery":     Type3DEmbroidery,
	"3d puff":           Type3DEmbroidery,
	"3d puff embroidery": Type3DEmbroidery,
	"rubber patch":      TypeRubberPatch,
	"pvc patch":         TypeRubberPatch,
	"leather patch":     TypeLeatherPatch,
	"woven patch":       TypeWovenPatch,
	"printed patch":     TypePrintWovenPatch,
	"print woven patch": TypePrintWovenPatch,
	"printed woven patch": TypePrintWovenPatch,
	"screen print":      TypeScreenPrint,
	"printing":          TypeScreenPrint,
	"heat transfer":     TypeHeatTransfer,
	"sublimation":       TypeHeatTransfer,
}

// CanonicalType maps a free-form decoration type name onto its catalog name.
// Unknown names pass through unchanged so the catalog stays the authority.
func CanonicalType(name string) string {
	if canonical, ok := typeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical
	}
	return strings.TrimSpace(name)
}

// applicationSurcharges are the customization rows priced on top of a
// decoration when its application method is not the default.
var applicationSurcharges = map[domain.ApplicationMethod]string{
	domain.ApplicationRun:   "Run Stitch",
	domain.ApplicationSatin: "Satin Stitch",
}

// componentsFor expands a decoration request into the list of customization
// row names that together price it.
func componentsFor(req domain.DecorationRequest) []string {
	if req.IsComposite() {
		return req.Components
	}
	sizeEmbroidery := fmt.Sprintf("%s Size Embroidery", req.Size)
	switch CanonicalType(req.Type) {
	case Type3DEmbroidery:
		// 3D is always a size-scaled base charge plus the flat 3D surcharge.
		return []string{sizeEmbroidery, Type3DEmbroidery}
	case TypeFlatEmbroidery:
		return []string{sizeEmbroidery}
	default:
		return []string{fmt.Sprintf("%s %s", req.Size, CanonicalType(req.Type))}
	}
}

// DecomposeLogo expands one decoration request into priced line items, one
// per resolved customization component. Components missing from the catalog
// are logged and excluded rather than failing the quote, with the gaps noted
// on the last surviving line; when nothing resolves at all a single zero
// line records them so the decoration still shows in the breakdown. Each
// line's Baseline48 carries that component's entry-tier price for savings
// display.
func DecomposeLogo(snap *catalog.Snapshot, req domain.DecorationRequest, quantity int, logger *slog.Logger) []domain.CostLineItem {
	components := componentsFor(req)
	if method := applicationSurcharges[req.Application]; method != "" {
		components = append(components, method)
	}

	label := CanonicalType(req.Type)
	if req.IsComposite() {
		label = strings.Join(req.Components, " + ")
	}

	qty := decimal.NewFromInt(int64(quantity))
	var lines []domain.CostLineItem
	var excluded []string
	for _, name := range components {
		row, ok := snap.Row(domain.CategoryCustomization, name)
		if !ok {
			if logger != nil {
				logger.Warn("decoration_component_unpriced", "component", name, "position", string(req.Position))
			}
			excluded = append(excluded, fmt.Sprintf("%s (not in catalog)", name))
			continue
		}
		price, ok := ResolveUnitPrice(row, quantity)
		if !ok {
			if logger != nil {
				logger.Warn("decoration_component_unavailable", "component", name, "quantity", quantity)
			}
			excluded = append(excluded, fmt.Sprintf("%s (unavailable at %d units)", name, quantity))
			continue
		}
		baseline := price
		if entry, ok := ResolveUnitPrice(row, domain.MinOrderQuantity); ok {
			baseline = entry
		}
		lines = append(lines, domain.CostLineItem{
			Name:       fmt.Sprintf("%s @ %s", name, req.Position),
			UnitPrice:  price,
			Quantity:   quantity,
			TotalCost:  price.Mul(qty),
			Details:    fmt.Sprintf("%s/unit, part of %s", price, label),
			Baseline48: baseline,
		})
	}

	if len(lines) == 0 {
		return []domain.CostLineItem{{
			Name:     fmt.Sprintf("%s @ %s", label, req.Position),
			Quantity: quantity,
			Details:  fmt.Sprintf("no component priced, excluded %s", strings.Join(excluded, ", ")),
		}}
	}
	if len(excluded) > 0 {
		last := &lines[len(lines)-1]
		last.Details = fmt.Sprintf("%s, excluded %s", last.Details, strings.Join(excluded, ", "))
	}
	return lines
}
