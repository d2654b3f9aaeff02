package domain

import "time"

// Invitation statuses as stored. "expired" is derived at read time from
// ExpiresAt and is never written to the store.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// InvitationTTL is the fixed validity window for invitation tokens.
const InvitationTTL = 7 * 24 * time.Hour

// Invitation grants the holder of its (never-stored) token membership in a
// company at a fixed role. Rows are kept forever as history; acceptance is
// terminal.
type Invitation struct {
	ID         string
	CompanyID  string
	Email      string
	Role       Role
	TokenHash  string
	ExpiresAt  time.Time
	Status     string
	CreatedBy  string // user id of the issuing admin, empty if that user was removed
	AcceptedBy string // user id created by acceptance, empty while pending
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired reports whether the invitation is past its validity window at t.
func (i Invitation) Expired(t time.Time) bool {
	return t.After(i.ExpiresAt)
}

// InvitationSummary is what Resolve exposes to the accept page: enough to
// render "join <company> as <role>", and never the token itself.
type InvitationSummary struct {
	Email       string
	Role        Role
	CompanyID   string
	CompanyName string
	ExpiresAt   time.Time
}
