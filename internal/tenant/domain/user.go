package domain

import "time"

// User is a principal record: a member of exactly one company holding exactly
// one role there. IdentityRef links the row to the external identity-provider
// account (a UUID) and is unique across all companies.
type User struct {
	ID          string
	CompanyID   string
	FirstName   string
	LastName    string
	Email       string
	Role        Role
	IdentityRef string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
