package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
	"github.com/teamgatehq/teamgate/pkg/cryptox"
	"github.com/teamgatehq/teamgate/pkg/idx"
	"github.com/teamgatehq/teamgate/pkg/jwtx"
)

// MinPasswordLength matches what the signup forms enforce client-side.
const MinPasswordLength = 8

// Local is a self-contained Provider backed by the service's own database.
// Passwords are argon2id hashes, session tokens are EdDSA JWTs whose sid
// claim points at a revocable session row.
type Local struct {
	store  store.Store
	signer *jwtx.Signer
	ttl    time.Duration
}

func NewLocal(st store.Store, signer *jwtx.Signer, ttl time.Duration) *Local {
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	return &Local{
		store:  st,
		signer: signer,
		ttl:    ttl,
	}
}

func (l *Local) Register(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", ErrInvalidCredentials
	}
	if len(password) < MinPasswordLength {
		return "", ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", err
	}

	// Identity references are UUIDs, decoupled from the ULIDs used for
	// tenant-side rows.
	id := uuid.NewString()

	err = l.store.Accounts().CreateAccount(ctx, domain.Account{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return "", ErrEmailTaken
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (l *Local) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	account, err := l.store.Accounts().GetAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		// Burn comparable time so the error can't distinguish unknown
		// accounts from wrong passwords.
		_ = cryptox.VerifyPassword(password, dummyHash)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	now := time.Now().UTC()
	sid := idx.New().String()

	if err := l.store.Sessions().CreateSession(ctx, domain.Session{
		ID:        sid,
		AccountID: account.ID,
		ExpiresAt: now.Add(l.ttl),
	}); err != nil {
		return "", err
	}

	claims := jwtx.NewSessionClaims(account.ID, sid, account.Email, l.signer.Issuer(), l.ttl, now)
	return l.signer.Sign(claims)
}

func (l *Local) CurrentPrincipalIdentity(ctx context.Context, token string) (string, error) {
	claims, err := l.verifySession(ctx, token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (l *Local) Invalidate(ctx context.Context, token string) error {
	claims, err := l.verifySession(ctx, token)
	if errors.Is(err, ErrSessionInvalid) {
		return nil // already dead, nothing to do
	}
	if err != nil {
		return err
	}
	return l.store.Sessions().RevokeSession(ctx, claims.SID)
}

// verifySession checks the token signature and claims, then the backing
// session row. The row check is what makes logout immediate.
func (l *Local) verifySession(ctx context.Context, token string) (jwtx.Claims, error) {
	claims, err := l.signer.Verify(token)
	if err != nil {
		return jwtx.Claims{}, ErrSessionInvalid
	}
	if claims.SID == "" || claims.Subject == "" {
		return jwtx.Claims{}, ErrSessionInvalid
	}

	session, err := l.store.Sessions().GetSessionByID(ctx, claims.SID)
	if errors.Is(err, store.ErrNotFound) {
		return jwtx.Claims{}, ErrSessionInvalid
	}
	if err != nil {
		return jwtx.Claims{}, err
	}

	if session.Revoked || time.Now().UTC().After(session.ExpiresAt) {
		return jwtx.Claims{}, ErrSessionInvalid
	}
	if session.AccountID != claims.Subject {
		return jwtx.Claims{}, ErrSessionInvalid
	}

	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dummyHash is a valid argon2id hash of a throwaway value, used to equalize
// timing on unknown-account logins.
const dummyHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$mPNHmjg0UnyEZKevoZFBX1Wzm0X6zJrAkMyLLrH4BSs"
