package constant

// Controlled vocabulary for generic-service categories. Raw partner types are
// normalized into one of these; anything else is composed as
// "<category> - <type>".
const (
	CategoryFood    = "Food"
	CategoryLaundry = "Laundry"
	CategoryWater   = "Water"
	CategoryRepair  = "Repair"
	CategoryStore   = "Store"
)

const PartnerTypeAccommodation = "accommodation"

// AmenityVocabulary is the fixed amenity matrix for accommodation listings.
// A registration's selected-amenities list is folded into this shape with
// booleans; unknown amenities are dropped.
var AmenityVocabulary = map[string][]string{
	"basic":    {"wifi", "parking", "power_backup", "water_supply"},
	"room":     {"attached_bathroom", "ac", "furnished", "balcony"},
	"services": {"housekeeping", "laundry", "meals", "security"},
}

// DashboardRoutes maps a normalized partner type/category to the client
// route that renders its dashboard.
var DashboardRoutes = map[string]string{
	PartnerTypeAccommodation: "/dashboard/accommodation",
	CategoryFood:             "/dashboard/food",
	CategoryLaundry:          "/dashboard/laundry",
	CategoryWater:            "/dashboard/water",
	CategoryRepair:           "/dashboard/repair",
	CategoryStore:            "/dashboard/store",
}

const DashboardRouteDefault = "/dashboard/services"
