package constant

// AccountKind is the end-user account variant.
type AccountKind string

const (
	AccountKindStudent      AccountKind = "student"
	AccountKindProfessional AccountKind = "professional"
)

// ChallengeKind tags an OTP or reset-token record with the account store it
// belongs to.
type ChallengeKind string

const (
	ChallengeKindUser    ChallengeKind = "user"
	ChallengeKindPartner ChallengeKind = "partner"
)

// Legacy tables a partner account row may reference.
const (
	ReferenceAccommodation = "accommodation_services"
	ReferenceServices      = "services"
)

// Auth provider tags on partner accounts.
const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

const AccountStatusActive = "active"
