package tenantsdk

import "time"

// ErrorResponse is the error envelope every endpoint uses.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g. "invalid_request").
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error.
	ErrorDescription string `json:"error_description"`
}

// CompanyInfo is the public shape of a company.
type CompanyInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Industry  string    `json:"industry,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserInfo is the public shape of a company member. Identity references and
// credential data are never exposed.
type UserInfo struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanySignupRequest creates a company together with its first admin.
type CompanySignupRequest struct {
	CompanyName  string `json:"company_name"`
	CompanyEmail string `json:"company_email"`
	Industry     string `json:"industry,omitempty"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// CompanySignupResponse returns the created records and a session token for
// the new admin. SessionToken may be empty if the post-signup login failed;
// the account still works.
type CompanySignupResponse struct {
	Company      CompanyInfo `json:"company"`
	User         UserInfo    `json:"user"`
	SessionToken string      `json:"session_token,omitempty"`
}

// InviteRequest mints an invitation. Role must be "manager" or "employee".
type InviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InviteResponse carries the raw invitation token and a shareable accept
// link. This is the only time the token is ever visible; the service stores a
// fingerprint. The service never sends the link anywhere itself.
type InviteResponse struct {
	InvitationToken string    `json:"invitation_token"`
	InvitationURL   string    `json:"invitation_url"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// InvitationInfo is a row in the admin's invitation listing. Status is one of
// "pending", "accepted" or "expired"; expiry is derived at read time.
type InvitationInfo struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// InvitationListResponse wraps the invitation listing.
type InvitationListResponse struct {
	Invitations []InvitationInfo `json:"invitations"`
}

// InvitationSummaryResponse is what the accept page renders: who is invited,
// to which company, at what role.
type InvitationSummaryResponse struct {
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CompanyID   string    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AcceptInvitationRequest redeems an invitation token. The email comes from
// the invitation itself, never the request.
type AcceptInvitationRequest struct {
	Token     string `json:"token"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// AcceptInvitationResponse returns the created member and a session token so
// the new member lands logged in.
type AcceptInvitationResponse struct {
	User         UserInfo `json:"user"`
	SessionToken string   `json:"session_token,omitempty"`
}

// RegisterRequest creates a bare credential account. Membership comes later,
// via signup or an invitation.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse acknowledges account creation.
type RegisterResponse struct {
	IdentityRef string `json:"identity_ref"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	SessionToken string `json:"session_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// MeResponse is the authenticated member's own profile plus their company.
type MeResponse struct {
	User    UserInfo    `json:"user"`
	Company CompanyInfo `json:"company"`
}

// UpdateCompanyRequest mutates the company profile.
type UpdateCompanyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Industry string `json:"industry,omitempty"`
}

// ChangeRoleRequest sets a member's role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// UserListResponse wraps the company roster.
type UserListResponse struct {
	Users []UserInfo `json:"users"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Uptime  string        `json:"uptime"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
