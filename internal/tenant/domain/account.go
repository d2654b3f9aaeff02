package domain

import "time"

// Account is an identity-provider credential record. Its ID (a UUID) is the
// identity reference that User rows link to. Accounts exist independently of
// tenant membership: an invitee registers an account before accepting.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is a revocable identity-provider session backing a signed session
// token. The token carries the session id; verification checks the row so
// logout takes effect immediately.
type Session struct {
	ID        string
	AccountID string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
