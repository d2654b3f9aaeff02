package tenantsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a tenant service instance. The zero value is not usable;
// construct with NewClient.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Session is a Client bound to a session token. All authenticated calls hang
// off a Session.
type Session struct {
	client *Client
	token  string
}

// Token exposes the raw session token, mainly for tests.
func (s *Session) Token() string { return s.token }

// SessionFromToken wraps an existing token, e.g. one returned by signup.
func (c *Client) SessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// SignupCompany creates a company and its first admin, returning a logged-in
// session for the admin alongside the created records.
func (c *Client) SignupCompany(ctx context.Context, req CompanySignupRequest) (CompanySignupResponse, *Session, error) {
	var resp CompanySignupResponse
	if err := c.do(ctx, http.MethodPost, "/onboarding/company-signup", "", req, &resp); err != nil {
		return CompanySignupResponse{}, nil, err
	}
	return resp, c.SessionFromToken(resp.SessionToken), nil
}

// Register creates a bare credential account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &resp)
	return resp, err
}

// Login authenticates and returns a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return c.SessionFromToken(resp.SessionToken), nil
}

// ResolveInvitation previews an invitation token. Unauthenticated.
func (c *Client) ResolveInvitation(ctx context.Context, token string) (InvitationSummaryResponse, error) {
	var resp InvitationSummaryResponse
	err := c.do(ctx, http.MethodGet, "/invitations/"+token, "", nil, &resp)
	return resp, err
}

// AcceptInvitation redeems an invitation token. Unauthenticated; returns a
// logged-in session for the new member.
func (c *Client) AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (AcceptInvitationResponse, *Session, error) {
	var resp AcceptInvitationResponse
	if err := c.do(ctx, http.MethodPost, "/invitations/accept", "", req, &resp); err != nil {
		return AcceptInvitationResponse{}, nil, err
	}
	return resp, c.SessionFromToken(resp.SessionToken), nil
}

// Livez checks process liveness.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", "", nil, &resp)
	return resp, err
}

// Readyz checks readiness including database connectivity.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", "", nil, &resp)
	return resp, err
}

// Logout revokes the session. The token stops working immediately.
func (s *Session) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/auth/logout", s.token, nil, nil)
}

// Me returns the member's own profile and company.
func (s *Session) Me(ctx context.Context) (MeResponse, error) {
	var resp MeResponse
	err := s.client.do(ctx, http.MethodGet, "/me", s.token, nil, &resp)
	return resp, err
}

// IssueInvitation mints an invitation. Admin-only.
func (s *Session) IssueInvitation(ctx context.Context, email, role string) (InviteResponse, error) {
	var resp InviteResponse
	err := s.client.do(ctx, http.MethodPost, "/invitations", s.token, InviteRequest{Email: email, Role: role}, &resp)
	return resp, err
}

// ListInvitations returns the company's invitations. Admin-only.
func (s *Session) ListInvitations(ctx context.Context) (InvitationListResponse, error) {
	var resp InvitationListResponse
	err := s.client.do(ctx, http.MethodGet, "/invitations", s.token, nil, &resp)
	return resp, err
}

// ListUsers returns the company roster. Any member.
func (s *Session) ListUsers(ctx context.Context) (UserListResponse, error) {
	var resp UserListResponse
	err := s.client.do(ctx, http.MethodGet, "/users", s.token, nil, &resp)
	return resp, err
}

// ChangeUserRole sets a member's role. Admin-only.
func (s *Session) ChangeUserRole(ctx context.Context, userID, role string) (UserInfo, error) {
	var resp UserInfo
	err := s.client.do(ctx, http.MethodPut, "/users/"+userID+"/role", s.token, ChangeRoleRequest{Role: role}, &resp)
	return resp, err
}

// RemoveUser deletes a member. Admin-only.
func (s *Session) RemoveUser(ctx context.Context, userID string) error {
	return s.client.do(ctx, http.MethodDelete, "/users/"+userID, s.token, nil, nil)
}

// GetCompany returns the member's company.
func (s *Session) GetCompany(ctx context.Context) (CompanyInfo, error) {
	var resp CompanyInfo
	err := s.client.do(ctx, http.MethodGet, "/company", s.token, nil, &resp)
	return resp, err
}

// UpdateCompany mutates the company profile. Admin-only.
func (s *Session) UpdateCompany(ctx context.Context, req UpdateCompanyRequest) (CompanyInfo, error) {
	var resp CompanyInfo
	err := s.client.do(ctx, http.MethodPut, "/company", s.token, req, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("tenantsdk: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("tenantsdk: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tenantsdk: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		if envelope.Error == "" {
			envelope.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        envelope.Error,
			Description: envelope.ErrorDescription,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tenantsdk: decode response: %w", err)
	}
	return nil
}
