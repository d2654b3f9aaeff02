package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
)

func TestResolvePrincipalRejectsBadTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.guard.ResolvePrincipal(ctx, "")
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = env.guard.ResolvePrincipal(ctx, "not-a-jwt")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolvePrincipalRequiresMembership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// A bare credential account with no member record can authenticate but
	// resolves to no principal.
	_, err := env.provider.Register(ctx, "loner@example.com", "a-long-password")
	require.NoError(t, err)

	token, err := env.provider.Authenticate(ctx, "loner@example.com", "a-long-password")
	require.NoError(t, err)

	_, err = env.guard.ResolvePrincipal(ctx, token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolvePrincipalAfterLogout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, admin := env.signupCompany(t, "acme", "ada@acme.example")

	token, err := env.provider.Authenticate(ctx, "ada@acme.example", "correct-horse-battery")
	require.NoError(t, err)

	p, err := env.guard.ResolvePrincipal(ctx, token)
	require.NoError(t, err)
	require.Equal(t, admin.UserID, p.UserID)

	require.NoError(t, env.provider.Invalidate(ctx, token))

	_, err = env.guard.ResolvePrincipal(ctx, token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolvePrincipalSeesFreshRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, admin := env.signupCompany(t, "acme", "ada@acme.example")
	member, _ := env.addMember(t, admin, "eve@acme.example", domain.RoleEmployee)

	token, err := env.provider.Authenticate(ctx, "eve@acme.example", "a-long-password")
	require.NoError(t, err)

	// Promote after the token was minted; the principal reflects the change.
	_, err = env.users.ChangeRole(ctx, admin, member.ID, domain.RoleManager)
	require.NoError(t, err)

	p, err := env.guard.ResolvePrincipal(ctx, token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleManager, p.Role)
}

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, adminUser, _ := env.signupCompany(t, "acme", "ada@acme.example")

	token, err := env.provider.Authenticate(ctx, "ada@acme.example", "correct-horse-battery")
	require.NoError(t, err)

	user, err := env.guard.CurrentUser(ctx, token)
	require.NoError(t, err)
	require.Equal(t, adminUser.ID, user.ID)
	require.Equal(t, company.ID, user.CompanyID)
	require.Equal(t, "Ada", user.FirstName)
}

func TestRequireRoleFailsClosed(t *testing.T) {
	admin := domain.Principal{UserID: "u1", CompanyID: "c1", Role: domain.RoleAdmin}
	employee := domain.Principal{UserID: "u2", CompanyID: "c1", Role: domain.RoleEmployee}
	bogus := domain.Principal{UserID: "u3", CompanyID: "c1", Role: domain.Role("superuser")}
	zero := domain.Principal{}

	require.NoError(t, RequireRole(admin, domain.RoleAdmin))
	require.NoError(t, RequireRole(employee, domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee))

	require.ErrorIs(t, RequireRole(employee, domain.RoleAdmin), ErrForbidden)
	require.ErrorIs(t, RequireRole(bogus, domain.RoleAdmin), ErrForbidden)
	require.ErrorIs(t, RequireRole(zero, domain.RoleAdmin), ErrForbidden)

	// A role outside the valid set never passes, even if allow-listed.
	require.ErrorIs(t, RequireRole(bogus, domain.Role("superuser")), ErrForbidden)
}

func TestRequireSameCompany(t *testing.T) {
	p := domain.Principal{UserID: "u1", CompanyID: "c1", Role: domain.RoleAdmin}

	require.NoError(t, RequireSameCompany(p, "c1"))
	require.ErrorIs(t, RequireSameCompany(p, "c2"), ErrForbidden)
	require.ErrorIs(t, RequireSameCompany(p, ""), ErrForbidden)
}
