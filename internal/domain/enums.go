package domain

type Category string

const (
	CategoryBaseProduct    Category = "base_product"
	CategoryCustomization  Category = "customization"
	CategoryPremiumFabric  Category = "premium_fabric"
	CategoryPremiumClosure Category = "premium_closure"
	CategoryAccessory      Category = "accessory"
	CategoryDelivery       Category = "delivery"
	CategoryService        Category = "service"
	CategoryMoldCharge     Category = "mold_charge"
)

// Categories lists every price-row category in breakdown display order.
var Categories = []Category{
	CategoryBaseProduct,
	CategoryCustomization,
	CategoryPremiumFabric,
	CategoryPremiumClosure,
	CategoryAccessory,
	CategoryDelivery,
	CategoryService,
	CategoryMoldCharge,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"base_product": true, "customization": true, "premium_fabric": true,
	"premium_closure": true, "accessory": true, "delivery": true,
	"service": true, "mold_charge": true,
}

type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

type Position string

const (
	PositionFront     Position = "Front"
	PositionBack      Position = "Back"
	PositionLeft      Position = "Left"
	PositionRight     Position = "Right"
	PositionUpperBill Position = "Upper Bill"
	PositionUnderBill Position = "Under Bill"
	PositionVelcro    Position = "Velcro"
)

// ValidPositions is the canonical set of decoration placements. At most one
// decoration may occupy a position within a single order.
var ValidPositions = map[Position]bool{
	PositionFront: true, PositionBack: true, PositionLeft: true,
	PositionRight: true, PositionUpperBill: true, PositionUnderBill: true,
	PositionVelcro: true,
}

type ApplicationMethod string

const (
	ApplicationDirect ApplicationMethod = "Direct"
	ApplicationRun    ApplicationMethod = "Run"
	ApplicationSatin  ApplicationMethod = "Satin"
)

type DeliveryMethod string

const (
	DeliveryRegular    DeliveryMethod = "Regular"
	DeliveryExpress    DeliveryMethod = "Express"
	DeliveryAirFreight DeliveryMethod = "Air Freight"
	DeliverySeaFreight DeliveryMethod = "Sea Freight"
)

// FreightMethods are the delivery methods restricted to bulk shipments.
var FreightMethods = map[DeliveryMethod]bool{
	DeliveryAirFreight: true,
	DeliverySeaFreight: true,
}

const (
	// MinOrderQuantity is the platform-wide minimum billable quantity.
	// Anything below it is a validation error, not a zero-cost quote.
	MinOrderQuantity = 48

	// FreightMinQuantity is the smallest order that may ship air or sea freight.
	FreightMinQuantity = 2880

	// MoldWaiverQuantity is the volume at which one-time mold charges are waived.
	MoldWaiverQuantity = 10000
)

// DefaultProductTier is the base product priced when the context names none.
const DefaultProductTier = "Standard Cap"

// Budget options that are recognized but carry no surcharge row.
var (
	BudgetFabrics  = map[string]bool{"Cotton": true, "Chino Twill": true, "Polyester": true}
	BudgetClosures = map[string]bool{"Plastic Snap": true, "Velcro Strap": true}
)

const (
	DefaultFabric  = "Chino Twill"
	DefaultClosure = "Plastic Snap"
)
