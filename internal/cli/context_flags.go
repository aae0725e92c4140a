package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/brimline/capquote/internal/domain"
)

// contextFlags collects the costing-context flags shared by quote, validate
// and suggest.
type contextFlags struct {
	file string

	quantity    int
	tier        string
	fabric      string
	closure     string
	decorations []string
	accessories []string
	services    []string
	delivery    string
	combinedQty int
	previousRef string
}

func (f *contextFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.file, "file", "", "read the costing context from a JSON file instead of flags")
	fs.IntVar(&f.quantity, "qty", 0, "order quantity")
	fs.StringVar(&f.tier, "tier", "", "product tier (default Standard Cap)")
	fs.StringVar(&f.fabric, "fabric", "", `fabric, "A/B" for a dual split`)
	fs.StringVar(&f.closure, "closure", "", "closure type")
	fs.StringArrayVar(&f.decorations, "decoration", nil,
		`decoration as "Type:Size:Position[:Application]", repeatable`)
	fs.StringArrayVar(&f.accessories, "accessory", nil, "accessory name, repeatable")
	fs.StringArrayVar(&f.services, "service", nil, "service name, repeatable")
	fs.StringVar(&f.delivery, "delivery", string(domain.DeliveryRegular), "delivery method")
	fs.IntVar(&f.combinedQty, "combined-qty", 0, "combined shipment quantity for freight tiering")
	fs.StringVar(&f.previousRef, "previous-order", "", "previous order reference for mold waiver")
}

func (f *contextFlags) build() (domain.CostingContext, error) {
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return domain.CostingContext{}, fmt.Errorf("reading context file: %w", err)
		}
		var ctx domain.CostingContext
		if err := json.Unmarshal(data, &ctx); err != nil {
			return domain.CostingContext{}, fmt.Errorf("decoding context file: %w", err)
		}
		return ctx, nil
	}

	ctx := domain.CostingContext{
		Quantity:                 f.quantity,
		ProductTier:              f.tier,
		FabricType:               f.fabric,
		ClosureType:              f.closure,
		Accessories:              f.accessories,
		Services:                 f.services,
		DeliveryMethod:           domain.DeliveryMethod(f.delivery),
		CombinedShipmentQuantity: f.combinedQty,
		PreviousOrderRef:         f.previousRef,
	}
	for _, spec := range f.decorations {
		d, err := parseDecorationFlag(spec)
		if err != nil {
			return domain.CostingContext{}, err
		}
		ctx.Decorations = append(ctx.Decorations, d)
	}
	return ctx, nil
}

// parseDecorationFlag reads "Rubber Patch:Large:Front" or
// "Flat Embroidery:Small:Left:Satin".
func parseDecorationFlag(spec string) (domain.DecorationRequest, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return domain.DecorationRequest{}, fmt.Errorf(
			"invalid decoration %q: want Type:Size:Position[:Application]", spec)
	}
	d := domain.DecorationRequest{
		Type:        strings.TrimSpace(parts[0]),
		Size:        domain.Size(strings.TrimSpace(parts[1])),
		Position:    domain.Position(strings.TrimSpace(parts[2])),
		Application: domain.ApplicationDirect,
	}
	if len(parts) == 4 {
		d.Application = domain.ApplicationMethod(strings.TrimSpace(parts[3]))
	}
	return d, nil
}
