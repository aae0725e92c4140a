package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brimline/capquote/internal/domain"
)

func TestExtractQuantity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"pcs", "I need 576 pcs for an event", intPtr(576)},
		{"pieces", "make that 1,000 pieces please", intPtr(1000)},
		{"caps", "can you do 144 caps", intPtr(144)},
		{"units", "2880 units to Hamburg", intPtr(2880)},
		{"qty phrase", "quantity of 300 with our logo", intPtr(300)},
		{"qty colon", "qty: 48", intPtr(48)},
		{"bare number ignored", "we have 3 designs ready", nil},
		{"no number", "some caps with a patch", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewExtractor().Extract(tt.text, nil)
			if tt.want == nil {
				assert.Nil(t, req.Quantity)
			} else {
				require.NotNil(t, req.Quantity)
				assert.Equal(t, *tt.want, *req.Quantity)
			}
		})
	}
}

func TestExtractFabric(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"single", "cotton caps with our logo", "Cotton"},
		{"canonical casing", "chino twill please", "Chino Twill"},
		{"slash pair", "Acrylic/Airmesh fabric would be great", "Acrylic/Airmesh"},
		{"front and back", "Suede front and Airmesh back", "Suede/Airmesh"},
		{"front back prefix", "front corduroy back cotton", "Corduroy/Cotton"},
		{"alias", "camouflage style", "Camo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewExtractor().Extract(tt.text, nil)
			require.NotNil(t, req.Fabric)
			assert.Equal(t, tt.want, *req.Fabric)
		})
	}
}

func TestExtractFabricRejectsColorPair(t *testing.T) {
	req := NewExtractor().Extract("Red/White colorway, 144 pcs", nil)
	assert.Nil(t, req.Fabric)
}

func TestExtractFabricColorPairBesideRealFabric(t *testing.T) {
	req := NewExtractor().Extract("144 pcs, Acrylic/Airmesh fabric, Red/White", nil)
	require.NotNil(t, req.Fabric)
	assert.Equal(t, "Acrylic/Airmesh", *req.Fabric)
}

func TestExtractClosure(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"with a Flexfit closure", "Flexfit"},
		{"snapback style", "Plastic Snap"},
		{"metal buckle at the back", "Metal Buckle"},
		{"velcro strap closure", "Velcro Strap"},
		{"fitted caps", "Fitted"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			req := NewExtractor().Extract(tt.text, nil)
			require.NotNil(t, req.Closure)
			assert.Equal(t, tt.want, *req.Closure)
		})
	}
}

func TestExtractDecorationPositionAndSizeWindows(t *testing.T) {
	req := NewExtractor().Extract("a small rubber patch on the back and 3d embroidery on the front", nil)

	require.Len(t, req.Decorations, 2)
	patch := req.Decorations[0]
	assert.Equal(t, "Rubber Patch", patch.Type)
	assert.Equal(t, domain.PositionBack, patch.Position)
	assert.Equal(t, domain.SizeSmall, patch.Size)

	puff := req.Decorations[1]
	assert.Equal(t, "3D Embroidery", puff.Type)
	assert.Equal(t, domain.PositionFront, puff.Position)
	assert.Equal(t, domain.SizeLarge, puff.Size, "front defaults to large when no size is spoken")
}

func TestExtractDecorationDefaultsOffFront(t *testing.T) {
	req := NewExtractor().Extract("embroidery on the left side", nil)

	require.Len(t, req.Decorations, 1)
	assert.Equal(t, "Flat Embroidery", req.Decorations[0].Type)
	assert.Equal(t, domain.PositionLeft, req.Decorations[0].Position)
	assert.Equal(t, domain.SizeSmall, req.Decorations[0].Size)
}

func TestExtractSpecificTypeBeatsGeneric(t *testing.T) {
	req := NewExtractor().Extract("3d embroidery front", nil)

	require.Len(t, req.Decorations, 1)
	assert.Equal(t, "3D Embroidery", req.Decorations[0].Type, "nested 'embroidery' must not double-count")
}

func TestExtractDuplicateMentionCollapses(t *testing.T) {
	req := NewExtractor().Extract("rubber patch on the front, yes a rubber patch front", nil)

	assert.Len(t, req.Decorations, 1)
}

func TestExtractDistantRepeatSurvives(t *testing.T) {
	text := "rubber patch on the front please. " +
		"For the second colorway we also want the same treatment, meaning another " +
		"rubber patch on the back."
	req := NewExtractor().Extract(text, nil)

	assert.Len(t, req.Decorations, 2)
}

func TestExtractPrimaryPrefersFront(t *testing.T) {
	req := NewExtractor().Extract("leather patch on the back and embroidery on the front", nil)

	require.NotNil(t, req.Primary)
	assert.Equal(t, domain.PositionFront, req.Primary.Position)
	assert.Equal(t, "Flat Embroidery", req.Primary.Type)
}

func TestExtractAccessories(t *testing.T) {
	req := NewExtractor().Extract("add hang tags, a woven label and stickers, one sticker per cap", nil)

	assert.Equal(t, []string{"Hang Tag", "Woven Label", "Sticker"}, req.Accessories)
}

func TestExtractEmptyText(t *testing.T) {
	req := NewExtractor().Extract("hello, can you help me?", nil)
	assert.True(t, req.IsEmpty())
	assert.Nil(t, req.Primary)
}

func TestFollowUpCarriesFullSpecification(t *testing.T) {
	first := "144 pcs, Acrylic/Airmesh fabric, Red/White, Flexfit closure, Rubber Patch Front, Embroidery Left"
	history := []Turn{{Role: RoleUser, Content: first}}

	req := NewExtractor().Extract("I want 576 pieces", history)

	require.NotNil(t, req.Quantity)
	assert.Equal(t, 576, *req.Quantity)
	require.NotNil(t, req.Fabric)
	assert.Equal(t, "Acrylic/Airmesh", *req.Fabric)
	require.NotNil(t, req.Closure)
	assert.Equal(t, "Flexfit", *req.Closure)
	require.Len(t, req.Decorations, 2)
	assert.Equal(t, "Rubber Patch", req.Decorations[0].Type)
	assert.Equal(t, domain.PositionFront, req.Decorations[0].Position)
	assert.Equal(t, "Flat Embroidery", req.Decorations[1].Type)
	assert.Equal(t, domain.PositionLeft, req.Decorations[1].Position)
}

func TestFollowUpPrefersAssistantMarker(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "cotton caps with a woven patch on the right"},
		{Role: RoleAssistant, Content: "Here is your quote:\n" +
			"QUOTE #q-1 | qty=144 | fabric=Suede | closure=Fitted | decorations=Leather Patch Large@Front | accessories=Polybag"},
	}

	req := NewExtractor().Extract("make it 1152 caps", history)

	require.NotNil(t, req.Quantity)
	assert.Equal(t, 1152, *req.Quantity)
	assert.Equal(t, "Suede", *req.Fabric, "the confirmed marker outranks older user text")
	assert.Equal(t, "Fitted", *req.Closure)
	require.Len(t, req.Decorations, 1)
	assert.Equal(t, "Leather Patch", req.Decorations[0].Type)
	assert.Equal(t, []string{"Polybag"}, req.Accessories)
}

func TestFollowUpNewTextWinsPerField(t *testing.T) {
	history := []Turn{
		{Role: RoleAssistant, Content: "QUOTE #q-2 | qty=576 | fabric=Cotton | closure=Flexfit | decorations=Rubber Patch Large@Front | accessories=-"},
	}

	req := NewExtractor().Extract("switch to denim fabric", history)

	assert.Equal(t, "Denim", *req.Fabric)
	assert.Equal(t, 576, *req.Quantity)
	assert.Equal(t, "Flexfit", *req.Closure)
	require.Len(t, req.Decorations, 1)
	assert.Equal(t, "Rubber Patch", req.Decorations[0].Type)
}

func TestExtractIsPureAcrossCalls(t *testing.T) {
	e := NewExtractor()
	text := "576 pcs, denim, rubber patch front"
	a := e.Extract(text, nil)
	b := e.Extract(text, nil)
	assert.Equal(t, a, b)
}

func intPtr(n int) *int { return &n }
