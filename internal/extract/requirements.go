package extract

import (
	"github.com/brimline/capquote/internal/domain"
)

// Turn is one message of a conversation transcript, most-recent-last.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DecorationMention is a decoration the buyer described in free text, with
// the position and size the extractor inferred around the mention.
type DecorationMention struct {
	Type       string
	Size       domain.Size
	Position   domain.Position
	Confidence float64
}

// Requirements holds what a message actually said. Nil means "not
// mentioned"; defaulting unset fields is the caller's concern.
type Requirements struct {
	Quantity    *int
	Fabric      *string
	Closure     *string
	Size        *string
	Decorations []DecorationMention
	Accessories []string
	Primary     *DecorationMention
}

// IsEmpty reports whether nothing at all was extracted.
func (r Requirements) IsEmpty() bool {
	return r.Quantity == nil && r.Fabric == nil && r.Closure == nil &&
		r.Size == nil && len(r.Decorations) == 0 && len(r.Accessories) == 0
}

// Apply overlays the mentioned fields onto a base context. Unmentioned
// fields keep the base value, so a follow-up message acts as a delta.
func (r Requirements) Apply(base domain.CostingContext) domain.CostingContext {
	out := base
	out.Quantity = domain.IntFromPtrWithDefault(base.Quantity, r.Quantity)
	out.FabricType = domain.StrFromPtrWithDefault(base.FabricType, r.Fabric)
	out.ClosureType = domain.StrFromPtrWithDefault(base.ClosureType, r.Closure)
	if len(r.Decorations) > 0 {
		out.Decorations = make([]domain.DecorationRequest, 0, len(r.Decorations))
		for _, m := range r.Decorations {
			out.Decorations = append(out.Decorations, domain.DecorationRequest{
				Type:        m.Type,
				Size:        m.Size,
				Position:    m.Position,
				Application: domain.ApplicationDirect,
			})
		}
	}
	if len(r.Accessories) > 0 {
		out.Accessories = append([]string(nil), r.Accessories...)
	}
	return out
}

// merge fills every field r leaves unset from carried. New text wins per
// field; carried values only plug gaps.
func (r Requirements) merge(carried Requirements) Requirements {
	out := r
	if out.Quantity == nil {
		out.Quantity = carried.Quantity
	}
	if out.Fabric == nil {
		out.Fabric = carried.Fabric
	}
	if out.Closure == nil {
		out.Closure = carried.Closure
	}
	if out.Size == nil {
		out.Size = carried.Size
	}
	if len(out.Decorations) == 0 {
		out.Decorations = carried.Decorations
		out.Primary = carried.Primary
	}
	if len(out.Accessories) == 0 {
		out.Accessories = carried.Accessories
	}
	return out
}
