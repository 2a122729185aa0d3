package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/campusnest/backend/constant"
)

// ServiceCatalog is a tagged union over the service category. Exactly one
// variant may be set, and it must match Category. Categories outside the
// controlled vocabulary fall back to the generic variant.
type ServiceCatalog struct {
	Category string          `json:"category"`
	Food     *FoodCatalog    `json:"food,omitempty"`
	Laundry  *LaundryCatalog `json:"laundry,omitempty"`
	Water    *WaterCatalog   `json:"water,omitempty"`
	Repair   *RepairCatalog  `json:"repair,omitempty"`
	Store    *StoreCatalog   `json:"store,omitempty"`
	Generic  JSONMap         `json:"generic,omitempty"`
}

type MenuItem struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type FoodCatalog struct {
	Cuisine           string     `json:"cuisine"`
	Menu              []MenuItem `json:"menu" validate:"dive"`
	DeliveryAvailable bool       `json:"deliveryAvailable"`
}

type LaundryCatalog struct {
	Services        []string `json:"services"`
	PricePerKg      float64  `json:"pricePerKg" validate:"gte=0"`
	PickupAvailable bool     `json:"pickupAvailable"`
}

type WaterCatalog struct {
	CanSizes      []string `json:"canSizes"`
	PricePerCan   float64  `json:"pricePerCan" validate:"gte=0"`
	DeliverySlots []string `json:"deliverySlots"`
}

type RepairCatalog struct {
	Specialties        []string `json:"specialties"`
	VisitCharge        float64  `json:"visitCharge" validate:"gte=0"`
	EmergencyAvailable bool     `json:"emergencyAvailable"`
}

type StoreCatalog struct {
	StoreType    string   `json:"storeType"`
	Categories   []string `json:"categories"`
	HomeDelivery bool     `json:"homeDelivery"`
}

// Validate checks that the set variant matches the declared category and no
// extra variant is present.
func (c *ServiceCatalog) Validate() error {
	set := 0
	for _, present := range []bool{
		c.Food != nil, c.Laundry != nil, c.Water != nil,
		c.Repair != nil, c.Store != nil, c.Generic != nil,
	} {
		if present {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("catalog declares %d variants, want at most one", set)
	}

	var want bool
	switch c.Category {
	case constant.CategoryFood:
		want = set == 0 || c.Food != nil
	case constant.CategoryLaundry:
		want = set == 0 || c.Laundry != nil
	case constant.CategoryWater:
		want = set == 0 || c.Water != nil
	case constant.CategoryRepair:
		want = set == 0 || c.Repair != nil
	case constant.CategoryStore:
		want = set == 0 || c.Store != nil
	default:
		want = set == 0 || c.Generic != nil
	}
	if !want {
		return fmt.Errorf("catalog variant does not match category %q", c.Category)
	}
	return nil
}

func (c ServiceCatalog) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *ServiceCatalog) Scan(src any) error {
	return scanJSON(src, c)
}
