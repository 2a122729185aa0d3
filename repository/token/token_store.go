package token

import (
	"context"
	"time"
)

// Key prefixes shared by the ledger flows.
const (
	PrefixOtp          = "otp:"
	PrefixReset        = "reset:"
	PrefixPartnerOtp   = "partner_otp:"
	PrefixPartnerReset = "partner_reset:"
)

// Store is the key-value backing for OTP challenges and reset grants. The
// in-memory implementation serves tests and single-instance deployments; the
// redis implementation makes the ledger safe across instances.
type Store interface {
	// Get returns the stored value, or "" when the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
