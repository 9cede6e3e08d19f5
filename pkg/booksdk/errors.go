package booksdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eazybooks/eazybooks/pkg/httpx"
)

// Stable error codes used across the API.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeEmailTaken         = "email_taken"
	ErrorCodeInviteInvalid      = "invite_invalid"
	ErrorCodeInviteExpired      = "invite_expired"
	ErrorCodeTenantMissing      = "tenant_missing"
	ErrorCodeAccessBlocked      = "access_blocked"
	ErrorCodeServerError        = "server_error"
)

// Guard denial reasons carried in DenialResponse.Reason.
const (
	DenialReasonNoTenant         = "no_tenant"
	DenialReasonInsufficientTier = "insufficient_tier"
	DenialReasonUnavailable      = "unavailable"
)

// APIError is a typed error for both server handlers (to write responses)
// and the SDK client (to surface failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the stable error code (e.g. "invalid_request")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// AccessBlockedError is the typed form of a guard denial as seen by SDK
// callers. It carries enough structure for the caller to decide between an
// onboarding prompt (no_tenant) and an upgrade prompt (insufficient_tier).
type AccessBlockedError struct {
	StatusCode   int
	Reason       string
	RequiredTier string
	UserTier     string
}

// Error implements the error interface.
func (e *AccessBlockedError) Error() string {
	if e.Reason == DenialReasonInsufficientTier {
		return fmt.Sprintf("access blocked: requires %s tier (current: %s)", e.RequiredTier, e.UserTier)
	}
	return "access blocked: " + e.Reason
}

// parseErrorResponse turns a non-2xx HTTP response into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var denial DenialResponse
	if err := json.Unmarshal(body, &denial); err == nil && denial.Error == ErrorCodeAccessBlocked {
		return &AccessBlockedError{
			StatusCode:   resp.StatusCode,
			Reason:       denial.Reason,
			RequiredTier: denial.RequiredTier,
			UserTier:     denial.UserTier,
		}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
