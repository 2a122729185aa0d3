package model

import "time"

// PartnerAccountEntity is the unified partner_accounts row. ID is shared
// with exactly one legacy row, identified by ReferenceTable/ReferenceID.
// Email is the upsert key: on conflict, phone/password/type/route/reference
// are overwritten (last write wins).
type PartnerAccountEntity struct {
	ID             string    `db:"id" json:"id"`
	FullName       string    `db:"full_name" json:"fullName"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	Password       string    `db:"password" json:"-"`
	AuthProvider   string    `db:"auth_provider" json:"authProvider"`
	PartnerType    string    `db:"partner_type" json:"partnerType"`
	DashboardRoute string    `db:"dashboard_route" json:"dashboardRoute"`
	ReferenceTable string    `db:"reference_table" json:"-"`
	ReferenceID    string    `db:"reference_id" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// PartnerFilter for querying partner accounts. Identifier matches email or
// phone.
type PartnerFilter struct {
	ID         string
	Email      string
	Identifier string
}

type PartnerLoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// PartnerProfile is the normalized success shape shared by all three
// resolution paths.
type PartnerProfile struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	UserType       string `json:"userType"`
	PartnerType    string `json:"partnerType"`
	DashboardRoute string `json:"dashboardRoute"`
}

// PartnerLoginResponse is the profile plus every listing tied to the
// partner's email.
type PartnerLoginResponse struct {
	PartnerProfile
	Accommodations []AccommodationEntity `json:"accommodations"`
	Services       []ServiceEntity       `json:"services"`
}

type SendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOtpRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Otp        string `json:"otp" validate:"required,len=6"`
}

type ForgotPasswordRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	UserType   string `json:"userType"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
