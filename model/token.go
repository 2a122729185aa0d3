package model

import (
	"time"

	"github.com/campusnest/backend/constant"
)

// OtpChallenge is the value stored against an identifier while an OTP is
// outstanding. The general ledger stores the code in the clear; the strict
// partner flow stores a bcrypt hash and sets Hashed.
type OtpChallenge struct {
	Code      string                 `json:"code"`
	Hashed    bool                   `json:"hashed"`
	Kind      constant.ChallengeKind `json:"kind"`
	ExpiresAt time.Time              `json:"expires_at"`
}

// ResetGrant is minted by a successful OTP verification and consumed by a
// password reset. Single use.
type ResetGrant struct {
	Identifier string                 `json:"identifier"`
	Kind       constant.ChallengeKind `json:"kind"`
	ExpiresAt  time.Time              `json:"expires_at"`
}

func (c OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

func (g ResetGrant) Expired(now time.Time) bool {
	return now.After(g.ExpiresAt)
}
