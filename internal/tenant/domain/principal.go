package domain

// Principal is the resolved acting user for a request: who they are, which
// tenant they belong to, and what they may do there. Guarded operations take
// it as an explicit argument instead of fetching ambient session state.
type Principal struct {
	UserID    string
	CompanyID string
	Role      Role
}
