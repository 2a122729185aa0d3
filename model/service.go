package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type PricingPlan struct {
	Name   string  `json:"name" validate:"required"`
	Price  float64 `json:"price" validate:"gte=0"`
	Period string  `json:"period"`
}

type PricingPlans []PricingPlan

func (p PricingPlans) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *PricingPlans) Scan(src any) error {
	return scanJSON(src, p)
}

// ServiceEntity represents the services legacy table. Category holds the
// normalized vocabulary value; PartnerType keeps the raw label the partner
// registered with. Password duplicates the partner account credential.
type ServiceEntity struct {
	ID           string         `db:"id" json:"id"`
	OwnerName    string         `db:"owner_name" json:"ownerName"`
	Email        string         `db:"email" json:"email"`
	Phone        string         `db:"phone" json:"phone"`
	Password     string         `db:"password" json:"-"`
	BusinessName string         `db:"business_name" json:"businessName"`
	Location     string         `db:"location" json:"location"`
	Category     string         `db:"category" json:"category"`
	PartnerType  string         `db:"partner_type" json:"partnerType"`
	Plans        PricingPlans   `db:"plans" json:"plans"`
	Catalog      ServiceCatalog `db:"catalog" json:"catalog"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

type RegisterServiceRequest struct {
	OwnerName    string         `json:"ownerName" validate:"required"`
	Phone        string         `json:"phone" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	Password     string         `json:"password" validate:"required,min=6"`
	BusinessName string         `json:"businessName" validate:"required"`
	Location     string         `json:"location" validate:"required"`
	Category     string         `json:"category"`
	PartnerType  string         `json:"partnerType" validate:"required"`
	Plans        []PricingPlan  `json:"plans" validate:"dive"`
	Catalog      ServiceCatalog `json:"catalog"`
}

// UpdateServiceRequest is a partial update keyed by listing id.
type UpdateServiceRequest struct {
	ID           string          `json:"id" validate:"required"`
	BusinessName *string         `json:"businessName"`
	Location     *string         `json:"location"`
	Plans        []PricingPlan   `json:"plans" validate:"dive"`
	Catalog      *ServiceCatalog `json:"catalog"`
}
