// Package access is the single authority for feature gating and tenant
// scoping. Every enforcement point in the service calls Guard; nothing else
// is allowed to compare tiers or resolve tenants on its own.
package access

import "github.com/eazybooks/eazybooks/internal/books/domain"

// Feature keys gated by subscription tier.
const (
	FeatureInvoicing          = "invoicing"
	FeatureQuotations         = "quotations"
	FeatureExpenseTracking    = "expense_tracking"
	FeatureIncomeTracking     = "income_tracking"
	FeatureCustomerManagement = "customer_management"
	FeatureBasicReporting     = "basic_reporting"
	FeatureAdvancedReporting  = "advanced_reporting"
	FeatureProjectTracking    = "project_tracking"
	FeatureBankAccounts       = "bank_accounts"
	FeatureEmployeeManagement = "employee_management"
	FeaturePayroll            = "payroll"
)

// catalog is the static feature → minimum tier mapping, fixed at build time.
var catalog = map[string]domain.Tier{
	FeatureInvoicing:          domain.TierFree,
	FeatureQuotations:         domain.TierFree,
	FeatureExpenseTracking:    domain.TierFree,
	FeatureIncomeTracking:     domain.TierFree,
	FeatureCustomerManagement: domain.TierFree,
	FeatureBasicReporting:     domain.TierFree,
	FeatureAdvancedReporting:  domain.TierPremium,
	FeatureProjectTracking:    domain.TierPremium,
	FeatureBankAccounts:       domain.TierPremium,
	FeatureEmployeeManagement: domain.TierEnterprise,
	FeaturePayroll:            domain.TierEnterprise,
}

// RequiredTier returns the minimum tier for a feature key. Unknown keys
// require enterprise so a typo in a key can never silently grant access.
func RequiredTier(featureKey string) domain.Tier {
	if tier, ok := catalog[featureKey]; ok {
		return tier
	}
	return domain.TierEnterprise
}

// KnownFeature reports whether the key is in the catalog.
func KnownFeature(featureKey string) bool {
	_, ok := catalog[featureKey]
	return ok
}
