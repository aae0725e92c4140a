package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brimline/capquote/internal/domain"
)

func TestMarkerRoundTrip(t *testing.T) {
	ctx := domain.CostingContext{
		Quantity:    576,
		FabricType:  "Acrylic/Airmesh",
		ClosureType: "Flexfit",
		Decorations: []domain.DecorationRequest{
			{Type: "Rubber Patch", Size: domain.SizeLarge, Position: domain.PositionFront, Application: domain.ApplicationDirect},
			{Type: "Flat Embroidery", Size: domain.SizeSmall, Position: domain.PositionLeft, Application: domain.ApplicationDirect},
		},
		Accessories: []string{"Hang Tag", "Sticker"},
	}

	line := FormatMarker("q-77", ctx)
	assert.Contains(t, line, "QUOTE #q-77")

	req, ok := parseMarker("Thanks for your order!\n" + line + "\nLet me know.")
	require.True(t, ok)

	require.NotNil(t, req.Quantity)
	assert.Equal(t, 576, *req.Quantity)
	assert.Equal(t, "Acrylic/Airmesh", *req.Fabric)
	assert.Equal(t, "Flexfit", *req.Closure)
	require.Len(t, req.Decorations, 2)
	assert.Equal(t, "Rubber Patch", req.Decorations[0].Type)
	assert.Equal(t, domain.SizeLarge, req.Decorations[0].Size)
	assert.Equal(t, domain.PositionFront, req.Decorations[0].Position)
	assert.Equal(t, "Flat Embroidery", req.Decorations[1].Type)
	assert.Equal(t, []string{"Hang Tag", "Sticker"}, req.Accessories)
	require.NotNil(t, req.Primary)
	assert.Equal(t, domain.PositionFront, req.Primary.Position)
}

func TestMarkerEmptyFields(t *testing.T) {
	ctx := domain.CostingContext{Quantity: 144}

	req, ok := parseMarker(FormatMarker("q-1", ctx))
	require.True(t, ok)

	assert.Equal(t, 144, *req.Quantity)
	assert.Nil(t, req.Fabric)
	assert.Nil(t, req.Closure)
	assert.Empty(t, req.Decorations)
	assert.Empty(t, req.Accessories)
}

func TestParseMarkerAbsent(t *testing.T) {
	_, ok := parseMarker("just a friendly message about caps")
	assert.False(t, ok)
}
