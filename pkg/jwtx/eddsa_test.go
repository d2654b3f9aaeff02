package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	signer, err := NewEphemeralSigner("test-issuer")
	require.NoError(t, err)

	claims := NewSessionClaims("account-1", "session-1", "jane@acme.com", "test-issuer", time.Hour, time.Now().UTC())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := signer.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "account-1", got.Subject)
	require.Equal(t, "session-1", got.SID)
	require.Equal(t, "jane@acme.com", got.Email)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer, err := NewEphemeralSigner("test-issuer")
	require.NoError(t, err)

	claims := NewSessionClaims("account-1", "session-1", "", "test-issuer", time.Hour, time.Now().UTC().Add(-2*time.Hour))
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer, err := NewEphemeralSigner("expected-issuer")
	require.NoError(t, err)

	claims := NewSessionClaims("account-1", "session-1", "", "other-issuer", time.Hour, time.Now().UTC())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	signer, err := NewEphemeralSigner("test-issuer")
	require.NoError(t, err)
	other, err := NewEphemeralSigner("test-issuer")
	require.NoError(t, err)

	claims := NewSessionClaims("account-1", "session-1", "", "test-issuer", time.Hour, time.Now().UTC())
	raw, err := other.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer, err := NewEphemeralSigner("test-issuer")
	require.NoError(t, err)

	_, err = signer.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
