package pricing

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/testutil"
)

func fullContext() domain.CostingContext {
	return domain.CostingContext{
		Quantity: 576,
		Decorations: []domain.DecorationRequest{
			{Type: "Rubber Patch", Size: domain.SizeLarge, Position: domain.PositionFront, Application: domain.ApplicationDirect},
			{Type: "Flat Embroidery", Size: domain.SizeSmall, Position: domain.PositionLeft, Application: domain.ApplicationDirect},
		},
		FabricType:     "Acrylic/Airmesh",
		ClosureType:    "Flexfit",
		Accessories:    []string{"Hang Tag"},
		Services:       []string{"Rush Production"},
		DeliveryMethod: domain.DeliveryRegular,
	}
}

func TestAssemble_FullBreakdown(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	result, err := NewAssembler(nil).Assemble(snap, fullContext())
	require.NoError(t, err)

	assert.Equal(t, 576, result.TotalUnits)
	assert.True(t, result.BaseProduct.TotalCost.Equal(dec("2188.80")), "base %s", result.BaseProduct.TotalCost)
	require.Len(t, result.Decorations, 2)
	assert.True(t, result.Decorations[0].TotalCost.Equal(dec("777.60")), "patch %s", result.Decorations[0].TotalCost)
	assert.True(t, result.Decorations[1].TotalCost.Equal(dec("345.60")), "embroidery %s", result.Decorations[1].TotalCost)
	require.Len(t, result.Fabrics, 2)
	require.NotNil(t, result.Closure)
	assert.True(t, result.Closure.TotalCost.Equal(dec("351.36")), "closure %s", result.Closure.TotalCost)
	require.Len(t, result.Accessories, 1)
	require.NotNil(t, result.Delivery)
	assert.True(t, result.Delivery.TotalCost.Equal(dec("403.20")), "delivery %s", result.Delivery.TotalCost)
	require.Len(t, result.Services, 1)
	assert.True(t, result.Services[0].TotalCost.Equal(dec("150")), "services stay flat")
	require.Len(t, result.MoldCharges, 1)
	assert.True(t, result.MoldCharges[0].TotalCost.Equal(dec("70")))

	assert.True(t, result.TotalCost.Equal(dec("4660.96")), "grand total %s", result.TotalCost)
}

// The grand total must equal the exact sum of category totals, always.
func TestAssemble_TotalEqualsCategorySum(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	contexts := []domain.CostingContext{
		fullContext(),
		testutil.NewTestContext(48),
		{Quantity: 20000, ProductTier: "Premium Cap", DeliveryMethod: domain.DeliverySeaFreight,
			Decorations: []domain.DecorationRequest{testutil.FrontLogo(domain.SizeLarge)}},
	}
	for _, ctx := range contexts {
		result, err := NewAssembler(nil).Assemble(snap, ctx)
		require.NoError(t, err)
		assert.True(t, result.TotalCost.Equal(result.SumCategories()),
			"total %s != category sum %s", result.TotalCost, result.SumCategories())
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	a := NewAssembler(nil)

	first, err := a.Assemble(snap, fullContext())
	require.NoError(t, err)
	second, err := a.Assemble(snap, fullContext())
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first, second), "identical context must produce identical results")
}

func TestAssemble_FailFast(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	a := NewAssembler(nil)

	tests := []struct {
		name   string
		mutate func(*domain.CostingContext)
		want   string
	}{
		{
			"below minimum quantity",
			func(c *domain.CostingContext) { c.Quantity = 47 },
			"minimum order is 48",
		},
		{
			"air freight below minimum",
			func(c *domain.CostingContext) { c.Quantity = 1000; c.DeliveryMethod = domain.DeliveryAirFreight },
			"requires at least 2880",
		},
		{
			"malformed decoration",
			func(c *domain.CostingContext) {
				c.Decorations = []domain.DecorationRequest{{Type: "Flat Embroidery"}}
			},
			"missing size, position, application",
		},
		{
			"duplicate position",
			func(c *domain.CostingContext) {
				c.Decorations = []domain.DecorationRequest{
					testutil.FrontLogo(domain.SizeLarge),
					testutil.FrontLogo(domain.SizeSmall),
				}
			},
			"already has a decoration",
		},
		{
			"unpriceable accessory",
			func(c *domain.CostingContext) { c.Accessories = []string{"Golden Tassel"} },
			"cannot be priced",
		},
		{
			"unknown delivery method",
			func(c *domain.CostingContext) { c.DeliveryMethod = "Drone" },
			"unknown delivery method",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.NewTestContext(576)
			tt.mutate(&ctx)
			_, err := a.Assemble(snap, ctx)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAssemble_CombinedShipmentQuantity(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	a := NewAssembler(nil)

	own := testutil.NewTestContext(576)
	bundled := own
	bundled.CombinedShipmentQuantity = 2880

	ownResult, err := a.Assemble(snap, own)
	require.NoError(t, err)
	bundledResult, err := a.Assemble(snap, bundled)
	require.NoError(t, err)

	// Bundling buys the 2880-tier rate but bills only the order's own units.
	assert.True(t, ownResult.Delivery.UnitPrice.Equal(dec("0.70")))
	assert.True(t, bundledResult.Delivery.UnitPrice.Equal(dec("0.55")))
	assert.Equal(t, 576, bundledResult.Delivery.Quantity)
	assert.True(t, bundledResult.Delivery.TotalCost.Equal(dec("316.80")))

	// Everything except delivery is identical.
	assert.True(t, ownResult.BaseProduct.TotalCost.Equal(bundledResult.BaseProduct.TotalCost))
}

func TestAssemble_CombinedQuantityUnlocksFreight(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	ctx := testutil.NewTestContext(1000)
	ctx.DeliveryMethod = domain.DeliverySeaFreight
	ctx.CombinedShipmentQuantity = 3000

	result, err := NewAssembler(nil).Assemble(snap, ctx)
	require.NoError(t, err)
	assert.True(t, result.Delivery.UnitPrice.Equal(dec("0.35")))
	assert.Equal(t, 1000, result.Delivery.Quantity)
}

func TestAssemble_DualFabricDeduped(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	ctx := testutil.NewTestContext(576)
	ctx.FabricType = "Suede/Suede"

	result, err := NewAssembler(nil).Assemble(snap, ctx)
	require.NoError(t, err)
	require.Len(t, result.Fabrics, 1, "identical halves collapse into one surcharge")
}

func TestAssemble_BudgetAndUnknownOptionsDegrade(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	ctx := testutil.NewTestContext(576)
	ctx.FabricType = "Chino Twill"
	ctx.ClosureType = "Plastic Snap"
	ctx.Services = []string{"Gift Wrapping"}

	result, err := NewAssembler(nil).Assemble(snap, ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Fabrics, "budget fabric carries no surcharge")
	assert.Nil(t, result.Closure, "budget closure carries no surcharge")
	assert.Empty(t, result.Services, "unknown service is skipped, not fatal")
}

func TestAssemble_VolumeWaivedMoldKeepsTotalInvariant(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	ctx := testutil.NewTestContext(domain.MoldWaiverQuantity)
	ctx.Decorations = []domain.DecorationRequest{
		{Type: "Leather Patch", Size: domain.SizeMedium, Position: domain.PositionFront, Application: domain.ApplicationDirect},
	}

	result, err := NewAssembler(nil).Assemble(snap, ctx)
	require.NoError(t, err)
	require.Len(t, result.MoldCharges, 1)
	assert.True(t, result.MoldCharges[0].Waived)
	assert.True(t, result.MoldCharges[0].TotalCost.IsZero())
	assert.True(t, result.TotalCost.Equal(result.SumCategories()))
}

func TestAssemble_3DEmbroideryKeepsComponentLines(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	ctx := testutil.NewTestContext(576)
	ctx.Decorations = []domain.DecorationRequest{
		{Type: "3D Embroidery", Size: domain.SizeLarge, Position: domain.PositionFront, Application: domain.ApplicationDirect},
	}

	result, err := NewAssembler(nil).Assemble(snap, ctx)
	require.NoError(t, err)

	// The base embroidery and the 3D surcharge stay separate line items.
	require.Len(t, result.Decorations, 2)
	assert.Equal(t, "Large Size Embroidery @ Front", result.Decorations[0].Name)
	assert.Equal(t, "3D Embroidery @ Front", result.Decorations[1].Name)
	combined := result.Decorations[0].TotalCost.Add(result.Decorations[1].TotalCost)
	assert.True(t, combined.Equal(dec("858.24")), "combined %s", combined)
	assert.True(t, result.TotalCost.Equal(result.SumCategories()))
}

func TestAssemble_DecorationBaselineAnnotated(t *testing.T) {
	snap := testutil.NewTestSnapshot(t)
	ctx := testutil.NewTestContext(2880)
	ctx.Decorations = []domain.DecorationRequest{testutil.FrontLogo(domain.SizeLarge)}

	result, err := NewAssembler(nil).Assemble(snap, ctx)
	require.NoError(t, err)
	require.Len(t, result.Decorations, 1)
	line := result.Decorations[0]
	assert.True(t, line.UnitPrice.Equal(dec("0.80")))
	assert.True(t, line.Baseline48.Equal(dec("1.45")), "entry-tier baseline for savings display")
}
