package domain

import "time"

// Profile is the per-user account state layered on top of the auth identity.
// A user either owns a Business or belongs to one via BelongsToBusinessID;
// until one of those holds, the user has no tenant and tenant-scoped
// operations are blocked.
type Profile struct {
	ID                  string // same id as the User
	BelongsToBusinessID *string
	SubscriptionTier    Tier
	OnboardingCompleted bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
