// Package jwtx wraps golang-jwt with an Ed25519 signer/verifier pair for
// session access tokens. Keys are generated at boot; sessions do not survive
// a restart, which is acceptable for this service because every request
// re-resolves profile and tenant state anyway.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is how long a session token stays valid.
const DefaultAccessTokenTTL = 12 * time.Hour

var (
	ErrTokenInvalid = errors.New("jwtx: token invalid")
	ErrTokenExpired = errors.New("jwtx: token expired")
)

// Claims carried by a session access token.
type Claims struct {
	Email string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// NewClaims builds session claims for a user.
func NewClaims(issuer, userID, email string, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
