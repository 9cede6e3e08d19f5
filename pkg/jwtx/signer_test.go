package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("eazybooks")
	require.NoError(t, err)
	require.True(t, signer.Ready())

	raw, err := signer.Sign(NewClaims("eazybooks", "user-1", "owner@example.com", time.Minute))
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "owner@example.com", claims.Email)
	require.Equal(t, "eazybooks", claims.Issuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("eazybooks")
	require.NoError(t, err)

	raw, err := signer.Sign(NewClaims("eazybooks", "user-1", "", -time.Minute))
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	a, err := NewSigner("eazybooks")
	require.NoError(t, err)
	b, err := NewSigner("eazybooks")
	require.NoError(t, err)

	raw, err := a.Sign(NewClaims("eazybooks", "user-1", "", time.Minute))
	require.NoError(t, err)

	_, err = b.Verify(raw)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("eazybooks")
	require.NoError(t, err)

	raw, err := signer.Sign(NewClaims("someone-else", "user-1", "", time.Minute))
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("eazybooks")
	require.NoError(t, err)

	_, err = signer.Verify("not.a.token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
