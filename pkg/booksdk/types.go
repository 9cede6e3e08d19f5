// Package booksdk contains the wire types for the EazyBooks HTTP API plus a
// small Go client. The server handlers marshal these same types, so the SDK
// and the service can never drift apart.
package booksdk

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g. "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// DenialResponse is returned when a feature guard blocks an operation.
// Reason is one of "no_tenant", "insufficient_tier" or "unavailable";
// RequiredTier is set only for insufficient_tier so the caller can render
// an upgrade prompt.
type DenialResponse struct {
	Error        string `json:"error"` // always "access_blocked"
	Reason       string `json:"reason"`
	RequiredTier string `json:"required_tier,omitempty"`
	UserTier     string `json:"user_tier,omitempty"`
}

// SignupRequest creates a new account on the free tier.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the session token issued on signup or login.
type AuthResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "Bearer"
	ExpiresIn   int    `json:"expires_in"` // seconds
}

// MeResponse describes the caller's current profile, tier and tenant binding.
// TenantID is empty while onboarding is incomplete.
type MeResponse struct {
	UserID              string           `json:"user_id"`
	Email               string           `json:"email"`
	SubscriptionTier    string           `json:"subscription_tier"`
	TenantID            string           `json:"tenant_id,omitempty"`
	OnboardingCompleted bool             `json:"onboarding_completed"`
	Business            *BusinessSummary `json:"business,omitempty"`
}

// BusinessSummary is the public shape of a Business record.
type BusinessSummary struct {
	ID           string `json:"id"`
	OwnerID      string `json:"owner_id"`
	Name         string `json:"name"`
	LegalName    string `json:"legal_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Currency     string `json:"currency"`
}

// CreateBusinessRequest completes onboarding by creating the caller's owned business.
type CreateBusinessRequest struct {
	Name         string `json:"name"`
	LegalName    string `json:"legal_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Currency     string `json:"currency,omitempty"` // defaults to AUD
}

// SwitchTenantRequest re-binds the caller to a different business.
type SwitchTenantRequest struct {
	BusinessID string `json:"business_id"`
}

// SwitchTenantResponse confirms the tenant the caller is now scoped to.
type SwitchTenantResponse struct {
	TenantID string `json:"tenant_id"`
}

// MintInviteRequest invites an employee into the caller's business.
type MintInviteRequest struct {
	Email        string `json:"email"`
	Role         string `json:"role"`                    // e.g. "employee"
	EmployeeRole string `json:"employee_role,omitempty"` // e.g. "accountant"
	ExpiresAt    int64  `json:"expires_at,omitempty"`    // unix seconds; default now+48h
}

// MintInviteResponse returns the raw single-use invite token. The token is
// never stored server-side, only its fingerprint.
type MintInviteResponse struct {
	InviteToken string `json:"invite_token"`
	BusinessID  string `json:"business_id"`
	ExpiresAt   int64  `json:"expires_at"`
}

// AcceptInviteRequest redeems an invite token and creates the invited account.
type AcceptInviteRequest struct {
	InviteToken string `json:"invite_token"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// AcceptInviteResponse identifies the created account and its tenant binding.
type AcceptInviteResponse struct {
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id"`
	Role       string `json:"role"`
}

// SubscriptionEvent is the payload delivered by the checkout provider's
// webhook when a subscription changes.
type SubscriptionEvent struct {
	UserID string `json:"user_id"`
	Tier   string `json:"tier"`
}

// InvoiceRequest creates an invoice in the caller's active tenant.
type InvoiceRequest struct {
	CustomerName string `json:"customer_name"`
	Number       string `json:"number"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency,omitempty"`
	DueAt        int64  `json:"due_at,omitempty"` // unix seconds
}

// InvoiceResponse is the public shape of an invoice.
type InvoiceResponse struct {
	ID           string `json:"id"`
	BusinessID   string `json:"business_id"`
	CustomerName string `json:"customer_name"`
	Number       string `json:"number"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	IssuedAt     int64  `json:"issued_at"`
	DueAt        int64  `json:"due_at,omitempty"`
}

// InvoiceListResponse wraps a tenant-scoped invoice listing.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ExpenseRequest records an expense in the caller's active tenant.
type ExpenseRequest struct {
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	AmountCents int64  `json:"amount_cents"`
	IncurredAt  int64  `json:"incurred_at,omitempty"` // unix seconds; default now
}

// ExpenseResponse is the public shape of an expense.
type ExpenseResponse struct {
	ID          string `json:"id"`
	BusinessID  string `json:"business_id"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	AmountCents int64  `json:"amount_cents"`
	IncurredAt  int64  `json:"incurred_at"`
}

// ExpenseListResponse wraps a tenant-scoped expense listing.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ReportSummaryResponse is the reporting rollup. The breakdown maps are only
// populated for detail=full, which requires the advanced_reporting feature.
type ReportSummaryResponse struct {
	InvoicedCents      int64            `json:"invoiced_cents"`
	ExpensedCents      int64            `json:"expensed_cents"`
	NetCents           int64            `json:"net_cents"`
	ExpensesByCategory map[string]int64 `json:"expenses_by_category,omitempty"`
	InvoicesByStatus   map[string]int64 `json:"invoices_by_status,omitempty"`
}

// HealthChecks reports per-dependency status on the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by the livez/readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
