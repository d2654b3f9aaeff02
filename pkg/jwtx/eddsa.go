package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs and verifies session tokens with a single Ed25519 keypair.
// Keys are ephemeral: a restart invalidates outstanding sessions, which is
// acceptable for dashboard sessions and avoids key storage entirely.
type Signer struct {
	kid    string
	key    ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
}

// NewEphemeralSigner generates a fresh Ed25519 keypair for the process
// lifetime.
func NewEphemeralSigner(issuer string) (*Signer, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}

	var kidBytes [8]byte
	if _, err := rand.Read(kidBytes[:]); err != nil {
		return nil, fmt.Errorf("jwtx: generate kid: %w", err)
	}

	return &Signer{
		kid:    hex.EncodeToString(kidBytes[:]),
		key:    key,
		pub:    pub,
		issuer: issuer,
	}, nil
}

func (s *Signer) KID() string { return s.kid }

func (s *Signer) Issuer() string { return s.issuer }

// Sign turns claims into a signed compact JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Verify parses and validates a compact JWT, returning its claims. Signature,
// algorithm, expiry and issuer are all enforced.
func (s *Signer) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if kid, _ := t.Header["kid"].(string); kid != "" && kid != s.kid {
			return nil, ErrInvalidToken
		}
		return s.pub, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalidToken
	}

	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateIssuer(s.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
