package access

import "github.com/eazybooks/eazybooks/internal/books/domain"

// Reason classifies why a guard blocked an operation.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNoTenant         Reason = "no_tenant"
	ReasonInsufficientTier Reason = "insufficient_tier"
	// ReasonUnavailable means actor state could not be loaded. Fail closed:
	// an unreachable store blocks, it never allows.
	ReasonUnavailable Reason = "unavailable"
)

// Actor is the caller's resolved state, passed explicitly to every guard
// call. It is assembled fresh per request from the store; holding one across
// requests would defeat the re-resolve-after-upgrade rule.
type Actor struct {
	UserID   string
	Tier     domain.Tier
	TenantID string // empty when no tenant is resolved
}

// Decision is the outcome of a guard check. Exactly one of the three
// terminal states applies: allowed, blocked(no_tenant) or
// blocked(insufficient_tier); Unavailable is reserved for callers that could
// not assemble an Actor at all.
type Decision struct {
	Allowed      bool
	Reason       Reason
	RequiredTier domain.Tier
	UserTier     domain.Tier
}

// Allowed is the decision for a permitted operation.
func allowed(tier domain.Tier) Decision {
	return Decision{Allowed: true, UserTier: tier}
}

// Unavailable is the fail-closed decision for infrastructure failures.
// Callers map store errors here instead of ever treating them as allowed.
func Unavailable() Decision {
	return Decision{Allowed: false, Reason: ReasonUnavailable}
}

// Guard is the single enforcement point combining tenant scoping and tier
// gating. The tenant check short-circuits first: a caller with no tenant is
// blocked even when their tier would qualify. Decisions are computed fresh on
// every call and must not be cached by callers.
func Guard(actor Actor, featureKey string) Decision {
	if actor.TenantID == "" {
		return Decision{
			Allowed:  false,
			Reason:   ReasonNoTenant,
			UserTier: actor.Tier,
		}
	}

	eval := Evaluate(actor.Tier, featureKey)
	if !eval.Allowed {
		return Decision{
			Allowed:      false,
			Reason:       ReasonInsufficientTier,
			RequiredTier: eval.RequiredTier,
			UserTier:     eval.UserTier,
		}
	}

	return allowed(actor.Tier)
}
