package access

import "github.com/eazybooks/eazybooks/internal/books/domain"

// Evaluation is the result of a tier check for one feature.
type Evaluation struct {
	Allowed      bool
	RequiredTier domain.Tier
	UserTier     domain.Tier
}

// Evaluate decides whether a tier grants a feature. Deterministic, no I/O.
// This is the only place the ordinal tier comparison happens.
func Evaluate(userTier domain.Tier, featureKey string) Evaluation {
	required := RequiredTier(featureKey)
	return Evaluation{
		Allowed:      userTier.Meets(required),
		RequiredTier: required,
		UserTier:     userTier,
	}
}
