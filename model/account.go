package model

import (
	"time"

	"github.com/campusnest/backend/constant"
)

// AccountEntity represents the end-user account table. Organization and
// IdentityCode are shared columns: university/student-id for students,
// company/employee-id for professionals, mutually exclusive by kind.
type AccountEntity struct {
	ID           string               `db:"id" json:"id"`
	Name         string               `db:"name" json:"name"`
	Email        string               `db:"email" json:"email"`
	Phone        string               `db:"phone" json:"phone"`
	Password     string               `db:"password" json:"-"`
	City         string               `db:"city" json:"city,omitempty"`
	UserType     constant.AccountKind `db:"user_type" json:"userType"`
	IsEmployed   bool                 `db:"is_employed" json:"isEmployed"`
	Organization string               `db:"organization" json:"organization,omitempty"`
	IdentityCode string               `db:"identity_code" json:"identityCode,omitempty"`
	Status       string               `db:"status" json:"status"`
	CreatedAt    time.Time            `db:"created_at" json:"created_at"`
}

// AccountFilter for querying end-user accounts. Identifier matches either
// email or phone.
type AccountFilter struct {
	ID         string
	Email      string
	Phone      string
	Identifier string
}

// AccountUpdate carries a partial profile update; nil fields are untouched.
type AccountUpdate struct {
	Name         *string
	Phone        *string
	City         *string
	Organization *string
	IdentityCode *string
	Password     *string
}

type SignupRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
	City       string `json:"city"`
	UserType   string `json:"userType" validate:"required"`
	University string `json:"university"`
	StudentID  string `json:"studentId"`
	Company    string `json:"company"`
	EmployeeID string `json:"employeeId"`
}

type SignupResponse struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	UserType constant.AccountKind `json:"userType"`
}

// LoginRequest accepts email or phone as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UserProfile is the sanitized account projection returned by login and the
// profile endpoints; the credential never leaves the store boundary.
type UserProfile struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	City         string               `json:"city,omitempty"`
	UserType     constant.AccountKind `json:"userType"`
	IsEmployed   bool                 `json:"isEmployed"`
	Organization string               `json:"organization,omitempty"`
	IdentityCode string               `json:"identityCode,omitempty"`
}

// UpdateProfileRequest is a partial update; absent fields keep their stored
// value. Unknown JSON fields are ignored by decoding.
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	City         *string `json:"city"`
	Organization *string `json:"organization"`
	IdentityCode *string `json:"identityCode"`
}

// GoogleAuthRequest carries either a verified ID token or, as fallback, an
// OAuth access token resolved via the userinfo endpoint.
type GoogleAuthRequest struct {
	IDToken     string `json:"idToken"`
	AccessToken string `json:"accessToken"`
}

// GoogleIdentity is the normalized identity extracted from either token path.
type GoogleIdentity struct {
	Name    string
	Email   string
	Picture string
}
