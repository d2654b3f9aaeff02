// Package identity is the credential boundary of the service. Everything
// tenant-side references accounts only through an opaque identity reference,
// so swapping the local provider for a hosted one is a wiring change, not a
// domain change.
package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrEmailTaken         = errors.New("identity: email already registered")
	ErrWeakPassword       = errors.New("identity: password too short")
	ErrSessionInvalid     = errors.New("identity: session invalid or revoked")
)

// Provider authenticates people and hands out session tokens. It knows
// nothing about companies or roles; it maps credentials to identity
// references and back.
type Provider interface {
	// Register creates a credential account and returns its identity
	// reference. The reference is stable for the life of the account.
	Register(ctx context.Context, email, password string) (identityRef string, err error)

	// Authenticate verifies credentials and mints a session token.
	Authenticate(ctx context.Context, email, password string) (token string, err error)

	// CurrentPrincipalIdentity resolves a session token to the identity
	// reference of the authenticated account. It fails for expired, revoked
	// or otherwise invalid sessions.
	CurrentPrincipalIdentity(ctx context.Context, token string) (identityRef string, err error)

	// Invalidate revokes the session behind the token. Idempotent.
	Invalidate(ctx context.Context, token string) error
}
