package domain

import "time"

// Company is a tenant. Companies are created once during onboarding, mutated
// only by their own admins, and never deleted.
type Company struct {
	ID        string
	Name      string
	Email     string
	Industry  string // optional, empty when not provided
	CreatedAt time.Time
	UpdatedAt time.Time
}
