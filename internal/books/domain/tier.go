package domain

// Tier is a subscription level gating feature availability.
type Tier string

const (
	TierFree       Tier = "free"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

// Rank maps a tier onto its position in the total order
// free < premium < enterprise. Unrecognised values rank as free so a
// corrupted or future tier string can never unlock anything.
func (t Tier) Rank() int {
	switch t {
	case TierPremium:
		return 1
	case TierEnterprise:
		return 2
	default:
		return 0
	}
}

// Meets reports whether t satisfies the required tier.
func (t Tier) Meets(required Tier) bool {
	return t.Rank() >= required.Rank()
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierPremium, TierEnterprise:
		return true
	}
	return false
}
