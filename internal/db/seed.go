package db

import (
	"context"
	"fmt"

	"github.com/brimline/capquote/internal/domain"
)

type seedRow struct {
	name     string
	category domain.Category
	// prices are aligned with domain.Breakpoints; "" means not offered.
	prices [7]string
}

// defaultPriceBook is the factory price list. Specialty rows deliberately
// leave volume bands empty: Express ships small orders only, freight ships
// bulk only, and rubber patches are not tooled below 144 units.
var defaultPriceBook = []seedRow{
	// Base products.
	{"Standard Cap", domain.CategoryBaseProduct, [7]string{"4.50", "4.10", "3.80", "3.55", "3.30", "3.10", "2.95"}},
	{"Premium Cap", domain.CategoryBaseProduct, [7]string{"5.80", "5.30", "4.95", "4.65", "4.35", "4.10", "3.90"}},
	{"Foam Trucker Cap", domain.CategoryBaseProduct, [7]string{"3.90", "3.60", "3.35", "3.15", "2.95", "2.80", "2.70"}},

	// Embroidery.
	{"Small Size Embroidery", domain.CategoryCustomization, [7]string{"0.85", "0.70", "0.60", "0.52", "0.45", "0.40", "0.36"}},
	{"Medium Size Embroidery", domain.CategoryCustomization, [7]string{"1.10", "0.92", "0.78", "0.68", "0.60", "0.53", "0.48"}},
	{"Large Size Embroidery", domain.CategoryCustomization, [7]string{"1.45", "1.22", "1.04", "0.92", "0.80", "0.72", "0.65"}},
	{"3D Embroidery", domain.CategoryCustomization, [7]string{"0.60", "0.52", "0.45", "0.40", "0.35", "0.31", "0.28"}},

	// Patches.
	{"Small Rubber Patch", domain.CategoryCustomization, [7]string{"", "1.05", "0.88", "0.76", "0.66", "0.58", "0.52"}},
	{"Medium Rubber Patch", domain.CategoryCustomization, [7]string{"", "1.30", "1.10", "0.95", "0.82", "0.72", "0.64"}},
	{"Large Rubber Patch", domain.CategoryCustomization, [7]string{"", "1.60", "1.35", "1.17", "1.02", "0.90", "0.80"}},
	{"Small Leather Patch", domain.CategoryCustomization, [7]string{"1.20", "1.00", "0.85", "0.74", "0.64", "0.57", "0.51"}},
	{"Medium Leather Patch", domain.CategoryCustomization, [7]string{"1.50", "1.25", "1.06", "0.92", "0.80", "0.71", "0.64"}},
	{"Large Leather Patch", domain.CategoryCustomization, [7]string{"1.85", "1.55", "1.31", "1.14", "0.99", "0.88", "0.79"}},
	{"Small Woven Patch", domain.CategoryCustomization, [7]string{"0.95", "0.80", "0.68", "0.59", "0.51", "0.45", "0.41"}},
	{"Medium Woven Patch", domain.CategoryCustomization, [7]string{"1.20", "1.00", "0.85", "0.74", "0.64", "0.57", "0.51"}},
	{"Large Woven Patch", domain.CategoryCustomization, [7]string{"1.50", "1.26", "1.07", "0.93", "0.81", "0.72", "0.65"}},
	{"Small Print Woven Patch", domain.CategoryCustomization, [7]string{"1.05", "0.88", "0.75", "0.65", "0.57", "0.50", "0.45"}},
	{"Medium Print Woven Patch", domain.CategoryCustomization, [7]string{"1.32", "1.11", "0.94", "0.82", "0.71", "0.63", "0.57"}},
	{"Large Print Woven Patch", domain.CategoryCustomization, [7]string{"1.65", "1.38", "1.17", "1.02", "0.89", "0.79", "0.71"}},

	// Prints and transfers.
	{"Small Screen Print", domain.CategoryCustomization, [7]string{"0.70", "0.58", "0.49", "0.43", "0.37", "0.33", "0.30"}},
	{"Medium Screen Print", domain.CategoryCustomization, [7]string{"0.88", "0.73", "0.62", "0.54", "0.47", "0.42", "0.38"}},
	{"Large Screen Print", domain.CategoryCustomization, [7]string{"1.10", "0.92", "0.78", "0.68", "0.59", "0.52", "0.47"}},
	{"Small Heat Transfer", domain.CategoryCustomization, [7]string{"0.75", "0.63", "0.53", "0.46", "0.40", "0.36", "0.32"}},
	{"Medium Heat Transfer", domain.CategoryCustomization, [7]string{"0.94", "0.79", "0.67", "0.58", "0.51", "0.45", "0.41"}},
	{"Large Heat Transfer", domain.CategoryCustomization, [7]string{"1.18", "0.99", "0.84", "0.73", "0.64", "0.57", "0.51"}},

	// Application-method surcharges.
	{"Run Stitch", domain.CategoryCustomization, [7]string{"0.25", "0.21", "0.18", "0.16", "0.14", "0.12", "0.11"}},
	{"Satin Stitch", domain.CategoryCustomization, [7]string{"0.35", "0.29", "0.25", "0.22", "0.19", "0.17", "0.15"}},

	// Premium fabrics (per-unit surcharge over the base product).
	{"Acrylic", domain.CategoryPremiumFabric, [7]string{"0.40", "0.35", "0.30", "0.26", "0.22", "0.20", "0.18"}},
	{"Airmesh", domain.CategoryPremiumFabric, [7]string{"0.35", "0.30", "0.26", "0.23", "0.20", "0.18", "0.16"}},
	{"Suede", domain.CategoryPremiumFabric, [7]string{"0.70", "0.60", "0.51", "0.44", "0.38", "0.34", "0.31"}},
	{"Wool", domain.CategoryPremiumFabric, [7]string{"0.65", "0.55", "0.47", "0.41", "0.36", "0.32", "0.29"}},
	{"Corduroy", domain.CategoryPremiumFabric, [7]string{"0.55", "0.47", "0.40", "0.35", "0.30", "0.27", "0.24"}},
	{"Camo", domain.CategoryPremiumFabric, [7]string{"0.30", "0.26", "0.22", "0.19", "0.17", "0.15", "0.14"}},
	{"Denim", domain.CategoryPremiumFabric, [7]string{"0.45", "0.38", "0.32", "0.28", "0.24", "0.22", "0.20"}},

	// Premium closures.
	{"Flexfit", domain.CategoryPremiumClosure, [7]string{"0.80", "0.70", "0.61", "0.54", "0.47", "0.42", "0.38"}},
	{"Fitted", domain.CategoryPremiumClosure, [7]string{"0.60", "0.52", "0.45", "0.39", "0.34", "0.30", "0.27"}},
	{"Metal Buckle", domain.CategoryPremiumClosure, [7]string{"0.45", "0.39", "0.34", "0.30", "0.26", "0.23", "0.21"}},
	{"Leather Strap", domain.CategoryPremiumClosure, [7]string{"0.55", "0.48", "0.41", "0.36", "0.31", "0.28", "0.25"}},

	// Accessories.
	{"Hang Tag", domain.CategoryAccessory, [7]string{"0.12", "0.10", "0.09", "0.08", "0.07", "0.06", "0.05"}},
	{"Woven Label", domain.CategoryAccessory, [7]string{"0.18", "0.15", "0.13", "0.11", "0.10", "0.09", "0.08"}},
	{"Sticker", domain.CategoryAccessory, [7]string{"0.08", "0.07", "0.06", "0.05", "0.04", "0.04", "0.03"}},
	{"Polybag", domain.CategoryAccessory, [7]string{"0.05", "0.04", "0.04", "0.03", "0.03", "0.02", "0.02"}},

	// Delivery (per unit).
	{"Regular", domain.CategoryDelivery, [7]string{"0.90", "0.80", "0.70", "0.62", "0.55", "0.48", "0.42"}},
	{"Express", domain.CategoryDelivery, [7]string{"1.80", "1.55", "1.30", "1.10", "", "", ""}},
	{"Air Freight", domain.CategoryDelivery, [7]string{"", "", "", "", "0.85", "0.72", "0.60"}},
	{"Sea Freight", domain.CategoryDelivery, [7]string{"", "", "", "", "0.35", "0.28", "0.22"}},

	// Flat services (charged once, not per unit).
	{"Rush Production", domain.CategoryService, [7]string{"150", "150", "150", "150", "150", "150", "150"}},
	{"Pre-production Sample", domain.CategoryService, [7]string{"45", "45", "45", "45", "45", "45", "45"}},
	{"Custom Box Design", domain.CategoryService, [7]string{"80", "80", "80", "80", "80", "80", "80"}},

	// One-time mold charges, by decoration size.
	{"Small Mold Charge", domain.CategoryMoldCharge, [7]string{"40", "40", "40", "40", "40", "40", "40"}},
	{"Medium Mold Charge", domain.CategoryMoldCharge, [7]string{"55", "55", "55", "55", "55", "55", "55"}},
	{"Large Mold Charge", domain.CategoryMoldCharge, [7]string{"70", "70", "70", "70", "70", "70", "70"}},
}

// SeedPriceBook inserts the factory price list, replacing rows that already
// exist. Used by `capquote catalog seed` and test fixtures.
func SeedPriceBook(ctx context.Context, dbtx DBTX) error {
	const query = `INSERT OR REPLACE INTO price_rows
		(name, category, price_48, price_144, price_576, price_1152, price_2880, price_10000, price_20000)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, row := range defaultPriceBook {
		args := []any{row.name, string(row.category)}
		for _, p := range row.prices {
			if p == "" {
				args = append(args, nil)
			} else {
				args = append(args, p)
			}
		}
		if _, err := dbtx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seeding price row %q: %w", row.name, err)
		}
	}
	return nil
}
