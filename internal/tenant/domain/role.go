package domain

// Role is the closed set of roles a principal can hold within its company.
// Every authorization check matches exhaustively over these values; unknown
// strings coming off the wire or out of the store are never silently accepted.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}

// Invitable reports whether r may appear on an invitation. Admins are never
// invited; the only path to admin is company signup or a later role change.
func (r Role) Invitable() bool {
	switch r {
	case RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }
