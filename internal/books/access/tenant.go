package access

import "github.com/eazybooks/eazybooks/internal/books/domain"

// ResolveTenant projects the active tenant id from already-fetched state.
// Ownership wins over membership: if the caller owns business, that id is the
// tenant; otherwise the profile's membership binding applies; otherwise the
// caller has no tenant yet (onboarding incomplete). business may be nil when
// the caller owns nothing.
func ResolveTenant(profile domain.Profile, business *domain.Business) (string, bool) {
	if business != nil && business.ID != "" && business.OwnerID == profile.ID {
		return business.ID, true
	}
	if profile.BelongsToBusinessID != nil && *profile.BelongsToBusinessID != "" {
		return *profile.BelongsToBusinessID, true
	}
	return "", false
}
