package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFabricHalves(t *testing.T) {
	tests := []struct {
		name   string
		fabric string
		want   []string
	}{
		{"single", "Acrylic", []string{"Acrylic"}},
		{"dual", "Acrylic/Airmesh", []string{"Acrylic", "Airmesh"}},
		{"dual with spaces", "Acrylic / Airmesh", []string{"Acrylic", "Airmesh"}},
		{"same halves deduped", "Suede/Suede", []string{"Suede"}},
		{"same halves case-insensitive", "Suede/suede", []string{"Suede"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := CostingContext{FabricType: tt.fabric}
			assert.Equal(t, tt.want, ctx.FabricHalves())
		})
	}
}

func TestDecorationRequest_MissingFields(t *testing.T) {
	full := DecorationRequest{
		Type: "Flat Embroidery", Size: SizeSmall,
		Position: PositionFront, Application: ApplicationDirect,
	}
	assert.Empty(t, full.MissingFields())

	assert.Equal(t, []string{"type", "size", "position", "application"},
		DecorationRequest{}.MissingFields())

	// An explicit component list stands in for a type name.
	composite := DecorationRequest{
		Components:  []string{"Large Size Embroidery", "3D Embroidery"},
		Size:        SizeLarge,
		Position:    PositionFront,
		Application: ApplicationDirect,
	}
	assert.Empty(t, composite.MissingFields())
}

func TestShipmentQuantity(t *testing.T) {
	ctx := CostingContext{Quantity: 576}
	assert.Equal(t, 576, ctx.ShipmentQuantity())

	ctx.CombinedShipmentQuantity = 2880
	assert.Equal(t, 2880, ctx.ShipmentQuantity())

	// A combined quantity below the order's own count never shrinks the lookup.
	ctx.CombinedShipmentQuantity = 100
	assert.Equal(t, 576, ctx.ShipmentQuantity())
}

func TestTierDefaults(t *testing.T) {
	assert.Equal(t, DefaultProductTier, CostingContext{}.Tier())
	assert.Equal(t, "Premium Cap", CostingContext{ProductTier: "Premium Cap"}.Tier())
}
