package partner

import (
	"strings"

	"github.com/campusnest/backend/constant"
)

// NormalizeCategory folds a raw partner-type label into the controlled
// category vocabulary. Labels outside the vocabulary are composed as
// "<category> - <type>" when a raw category is supplied, else passed through.
func NormalizeCategory(rawCategory, partnerType string) string {
	switch {
	case containsFold(partnerType, "food"), containsFold(partnerType, "tiffin"), containsFold(partnerType, "mess"):
		return constant.CategoryFood
	case containsFold(partnerType, "laundry"):
		return constant.CategoryLaundry
	case containsFold(partnerType, "water"):
		return constant.CategoryWater
	case containsFold(partnerType, "repair"):
		return constant.CategoryRepair
	case containsFold(partnerType, "store"), containsFold(partnerType, "shop"):
		return constant.CategoryStore
	}

	if rawCategory != "" {
		return rawCategory + " - " + partnerType
	}
	return partnerType
}

// DashboardRouteFor derives the client route for a partner type or
// normalized category.
func DashboardRouteFor(partnerType string) string {
	if route, ok := constant.DashboardRoutes[partnerType]; ok {
		return route
	}
	return constant.DashboardRouteDefault
}

// routeLooksStale flags routes written by older clients so login can
// recompute them.
func routeLooksStale(route string) bool {
	return route == "" || !strings.HasPrefix(route, "/dashboard/")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
