package domain

import "time"

// DefaultInviteTTL is how long an invite stays redeemable.
const DefaultInviteTTL = 48 * time.Hour

// Invite is a single-use employee invitation. Only the token fingerprint is
// stored; acceptance deletes the row atomically so a token can never be
// redeemed twice.
type Invite struct {
	ID           string
	TokenHash    string
	Email        string
	BusinessID   string
	InvitedBy    string
	Role         string // account role, e.g. "employee"
	EmployeeRole string // optional job title within the business
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Expired reports whether the invite is past its expiry at the given time.
func (i Invite) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
