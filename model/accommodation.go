package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// RoomPricing holds per-room-type charges.
type RoomPricing struct {
	Rent    float64 `json:"rent"`
	Deposit float64 `json:"deposit"`
}

// PricingMap keys room type to its pricing, persisted as a JSON column.
type PricingMap map[string]RoomPricing

func (p PricingMap) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *PricingMap) Scan(src any) error {
	return scanJSON(src, p)
}

// AmenityMatrix is the fixed-vocabulary amenity map: category -> amenity ->
// selected.
type AmenityMatrix map[string]map[string]bool

func (a AmenityMatrix) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *AmenityMatrix) Scan(src any) error {
	return scanJSON(src, a)
}

// AccommodationEntity represents the accommodation_services legacy table.
// Password duplicates the partner account credential and is kept in sync by
// the reset flow.
type AccommodationEntity struct {
	ID           string        `db:"id" json:"id"`
	OwnerName    string        `db:"owner_name" json:"ownerName"`
	Email        string        `db:"email" json:"email"`
	Phone        string        `db:"phone" json:"phone"`
	Password     string        `db:"password" json:"-"`
	PropertyName string        `db:"property_name" json:"propertyName"`
	Location     string        `db:"location" json:"location"`
	Rooms        int           `db:"rooms" json:"rooms"`
	GenderPolicy string        `db:"gender_policy" json:"genderPolicy"`
	Pricing      PricingMap    `db:"pricing" json:"pricing"`
	Amenities    AmenityMatrix `db:"amenities" json:"amenities"`
	Rules        JSONMap       `db:"rules" json:"rules"`
	Images       StringList    `db:"images" json:"images"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}

// RoomTypeInput carries rent and deposit as strings; clients send them as
// text and they are coerced to numbers on registration.
type RoomTypeInput struct {
	Type    string `json:"type" validate:"required"`
	Rent    string `json:"rent" validate:"required"`
	Deposit string `json:"deposit" validate:"required"`
}

type RegisterAccommodationRequest struct {
	OwnerName    string          `json:"ownerName" validate:"required"`
	Phone        string          `json:"phone" validate:"required"`
	Email        string          `json:"email" validate:"required,email"`
	Password     string          `json:"password" validate:"required,min=6"`
	PropertyName string          `json:"propertyName" validate:"required"`
	Location     string          `json:"location" validate:"required"`
	Rooms        int             `json:"rooms"`
	GenderPolicy string          `json:"genderPolicy"`
	RoomTypes    []RoomTypeInput `json:"roomTypes" validate:"dive"`
	Amenities    []string        `json:"amenities"`
	Rules        JSONMap         `json:"rules"`
	Images       []string        `json:"images"`
}

// UpdateAccommodationRequest is a partial update keyed by listing id.
type UpdateAccommodationRequest struct {
	ID           string          `json:"id" validate:"required"`
	PropertyName *string         `json:"propertyName"`
	Location     *string         `json:"location"`
	Rooms        *int            `json:"rooms"`
	GenderPolicy *string         `json:"genderPolicy"`
	RoomTypes    []RoomTypeInput `json:"roomTypes" validate:"dive"`
	Amenities    []string        `json:"amenities"`
}

type UpdatePhotosRequest struct {
	ID     string   `json:"id" validate:"required"`
	Images []string `json:"images" validate:"required"`
}

type UpdateRulesRequest struct {
	ID    string  `json:"id" validate:"required"`
	Rules JSONMap `json:"rules" validate:"required"`
}
