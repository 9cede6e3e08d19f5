package access

import (
	"testing"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/stretchr/testify/require"
)

func TestTierOrdering(t *testing.T) {
	t.Parallel()

	tiers := []domain.Tier{domain.TierFree, domain.TierPremium, domain.TierEnterprise}

	t.Run("ranks form a strict total order", func(t *testing.T) {
		require.Less(t, domain.TierFree.Rank(), domain.TierPremium.Rank())
		require.Less(t, domain.TierPremium.Rank(), domain.TierEnterprise.Rank())
	})

	t.Run("meets is consistent with rank", func(t *testing.T) {
		for _, a := range tiers {
			for _, b := range tiers {
				require.Equal(t, a.Rank() >= b.Rank(), a.Meets(b), "%s meets %s", a, b)
			}
		}
	})

	t.Run("unknown tier ranks as free", func(t *testing.T) {
		bogus := domain.Tier("platinum")
		require.Equal(t, domain.TierFree.Rank(), bogus.Rank())
		require.False(t, bogus.Meets(domain.TierPremium))
		require.True(t, bogus.Meets(domain.TierFree))
	})
}

func TestRequiredTier(t *testing.T) {
	t.Parallel()

	t.Run("known features", func(t *testing.T) {
		require.Equal(t, domain.TierFree, RequiredTier(FeatureBasicReporting))
		require.Equal(t, domain.TierPremium, RequiredTier(FeatureAdvancedReporting))
		require.Equal(t, domain.TierEnterprise, RequiredTier(FeatureEmployeeManagement))
	})

	t.Run("unknown keys fail closed to enterprise", func(t *testing.T) {
		for _, key := range []string{"", "basic_reportng", "totally_new_feature"} {
			require.Equal(t, domain.TierEnterprise, RequiredTier(key), "key %q", key)
			require.False(t, KnownFeature(key))
		}
	})
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tier    domain.Tier
		feature string
		allowed bool
	}{
		{"free can use basic reporting", domain.TierFree, FeatureBasicReporting, true},
		{"free cannot manage employees", domain.TierFree, FeatureEmployeeManagement, false},
		{"free cannot use advanced reporting", domain.TierFree, FeatureAdvancedReporting, false},
		{"premium can use advanced reporting", domain.TierPremium, FeatureAdvancedReporting, true},
		{"premium cannot run payroll", domain.TierPremium, FeaturePayroll, false},
		{"enterprise can manage employees", domain.TierEnterprise, FeatureEmployeeManagement, true},
		{"enterprise can use everything below it", domain.TierEnterprise, FeatureInvoicing, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(tt.tier, tt.feature)
			require.Equal(t, tt.allowed, eval.Allowed)
			require.Equal(t, tt.tier, eval.UserTier)
			require.Equal(t, RequiredTier(tt.feature), eval.RequiredTier)
		})
	}
}

func TestResolveTenant(t *testing.T) {
	t.Parallel()

	memberOf := "01BIZMEMBER"

	t.Run("owned business wins", func(t *testing.T) {
		profile := domain.Profile{ID: "u1", BelongsToBusinessID: &memberOf}
		business := &domain.Business{ID: "01BIZOWNED", OwnerID: "u1"}

		tenant, ok := ResolveTenant(profile, business)
		require.True(t, ok)
		require.Equal(t, "01BIZOWNED", tenant)
	})

	t.Run("falls back to membership", func(t *testing.T) {
		profile := domain.Profile{ID: "u1", BelongsToBusinessID: &memberOf}

		tenant, ok := ResolveTenant(profile, nil)
		require.True(t, ok)
		require.Equal(t, memberOf, tenant)
	})

	t.Run("business owned by someone else does not count", func(t *testing.T) {
		profile := domain.Profile{ID: "u1"}
		business := &domain.Business{ID: "01BIZOTHER", OwnerID: "u2"}

		_, ok := ResolveTenant(profile, business)
		require.False(t, ok)
	})

	t.Run("no business and no membership means no tenant", func(t *testing.T) {
		_, ok := ResolveTenant(domain.Profile{ID: "u1"}, nil)
		require.False(t, ok)
	})
}

func TestGuard(t *testing.T) {
	t.Parallel()

	t.Run("allowed when tenant and tier are satisfied", func(t *testing.T) {
		actor := Actor{UserID: "u1", Tier: domain.TierEnterprise, TenantID: "biz1"}
		d := Guard(actor, FeatureEmployeeManagement)
		require.True(t, d.Allowed)
		require.Equal(t, ReasonNone, d.Reason)
	})

	t.Run("no tenant blocks before tier check", func(t *testing.T) {
		// Enterprise tier would qualify, but the tenant check runs first.
		actor := Actor{UserID: "u1", Tier: domain.TierEnterprise}
		d := Guard(actor, FeatureEmployeeManagement)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonNoTenant, d.Reason)
	})

	t.Run("insufficient tier reports the required tier", func(t *testing.T) {
		actor := Actor{UserID: "u1", Tier: domain.TierFree, TenantID: "biz1"}
		d := Guard(actor, FeatureAdvancedReporting)
		require.False(t, d.Allowed)
		require.Equal(t, ReasonInsufficientTier, d.Reason)
		require.Equal(t, domain.TierPremium, d.RequiredTier)
		require.Equal(t, domain.TierFree, d.UserTier)
	})

	t.Run("unknown feature blocks everyone below enterprise", func(t *testing.T) {
		actor := Actor{UserID: "u1", Tier: domain.TierPremium, TenantID: "biz1"}
		d := Guard(actor, "feature_that_does_not_exist")
		require.False(t, d.Allowed)
		require.Equal(t, ReasonInsufficientTier, d.Reason)
		require.Equal(t, domain.TierEnterprise, d.RequiredTier)
	})

	t.Run("unavailable is never allowed", func(t *testing.T) {
		d := Unavailable()
		require.False(t, d.Allowed)
		require.Equal(t, ReasonUnavailable, d.Reason)
	})
}
