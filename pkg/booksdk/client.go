package booksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to an EazyBooks deployment. Unauthenticated operations hang
// off the Client; Login/Signup return a Session for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated client bound to one user's access token.
type Session struct {
	client *Client
	token  string
	userID string
}

// Token returns the raw bearer token, useful for tests.
func (s *Session) Token() string { return s.token }

// UserID returns the authenticated user's id.
func (s *Session) UserID() string { return s.userID }

// Signup creates an account and returns an authenticated session.
func (c *Client) Signup(ctx context.Context, email, password string) (*Session, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/signup", SignupRequest{Email: email, Password: password}, "", &out)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.AccessToken, userID: out.UserID}, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password}, "", &out)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.AccessToken, userID: out.UserID}, nil
}

// AcceptInvite redeems an invite token, creating the invited account, and
// returns an unauthenticated acceptance receipt. The new user logs in with
// the credentials they chose.
func (c *Client) AcceptInvite(ctx context.Context, req AcceptInviteRequest) (*AcceptInviteResponse, error) {
	var out AcceptInviteResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/invites/accept", req, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez probes the liveness endpoint.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the caller's profile, tier and resolved tenant.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/me", nil, s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBusiness completes onboarding by creating the caller's owned business.
func (s *Session) CreateBusiness(ctx context.Context, req CreateBusinessRequest) (*BusinessSummary, error) {
	var out BusinessSummary
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/businesses", req, s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SwitchTenant re-binds the caller to a different business.
func (s *Session) SwitchTenant(ctx context.Context, businessID string) (*SwitchTenantResponse, error) {
	var out SwitchTenantResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/tenant/switch", SwitchTenantRequest{BusinessID: businessID}, s.token, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MintInvite creates a single-use employee invite for the caller's business.
func (s *Session) MintInvite(ctx context.Context, req MintInviteRequest) (*MintInviteResponse, error) {
	var out MintInviteResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/invites/mint", req, s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvoice creates an invoice in the caller's active tenant.
func (s *Session) CreateInvoice(ctx context.Context, req InvoiceRequest) (*InvoiceResponse, error) {
	var out InvoiceResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/invoices", req, s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvoices lists the active tenant's invoices.
func (s *Session) ListInvoices(ctx context.Context) (*InvoiceListResponse, error) {
	var out InvoiceListResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/invoices", nil, s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateExpense records an expense in the caller's active tenant.
func (s *Session) CreateExpense(ctx context.Context, req ExpenseRequest) (*ExpenseResponse, error) {
	var out ExpenseResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/expenses", req, s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListExpenses lists the active tenant's expenses.
func (s *Session) ListExpenses(ctx context.Context) (*ExpenseListResponse, error) {
	var out ExpenseListResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/expenses", nil, s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportSummary fetches the reporting rollup. Set full to request the
// per-category breakdown, which needs the advanced_reporting feature.
func (s *Session) ReportSummary(ctx context.Context, full bool) (*ReportSummaryResponse, error) {
	path := "/v1/reports/summary"
	if full {
		path += "?detail=" + url.QueryEscape("full")
	}

	var out ReportSummaryResponse
	if err := s.client.doJSON(ctx, http.MethodGet, path, nil, s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON performs a JSON request/response round trip, mapping non-2xx
// responses to typed errors.
func (c *Client) doJSON(ctx context.Context, method, path string, in any, token string, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := parseErrorResponse(resp, raw); err != nil {
		return err
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
