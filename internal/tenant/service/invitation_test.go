package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/pkg/cryptox"
	"github.com/teamgatehq/teamgate/pkg/idx"
)

func TestIssueInvitationIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, admin := env.signupCompany(t, "acme", "ada@acme.example")
	_, manager := env.addMember(t, admin, "mia@acme.example", domain.RoleManager)
	_, employee := env.addMember(t, admin, "eve@acme.example", domain.RoleEmployee)

	_, _, err := env.invitation.IssueInvitation(ctx, manager, "x@acme.example", domain.RoleEmployee)
	require.ErrorIs(t, err, ErrForbidden)

	_, _, err = env.invitation.IssueInvitation(ctx, employee, "x@acme.example", domain.RoleEmployee)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestIssueInvitationRejectsNonInvitableRoles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, admin := env.signupCompany(t, "acme", "ada@acme.example")

	// There is no invitation path to admin.
	_, _, err := env.invitation.IssueInvitation(ctx, admin, "x@acme.example", domain.RoleAdmin)
	require.ErrorIs(t, err, ErrInvalidRole)

	_, _, err = env.invitation.IssueInvitation(ctx, admin, "x@acme.example", domain.Role("owner"))
	require.ErrorIs(t, err, ErrInvalidRole)

	_, _, err = env.invitation.IssueInvitation(ctx, admin, "", domain.RoleEmployee)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestInvitationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, _, admin := env.signupCompany(t, "acme", "ada@acme.example")

	token, inv, err := env.invitation.IssueInvitation(ctx, admin, "Bea@Acme.example", domain.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "bea@acme.example", inv.Email)
	require.Equal(t, domain.InvitationPending, inv.Status)

	// The raw token is never stored, only its fingerprint.
	stored, err := env.store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	require.NoError(t, err)
	require.Equal(t, inv.ID, stored.ID)
	require.NotEqual(t, token, stored.TokenHash)

	summary, err := env.invitation.ResolveInvitation(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "bea@acme.example", summary.Email)
	require.Equal(t, domain.RoleManager, summary.Role)
	require.Equal(t, company.ID, summary.CompanyID)
	require.Equal(t, "acme", summary.CompanyName)

	user, err := env.invitation.AcceptInvitation(ctx, token, "Bea", "Baker", "a-long-password")
	require.NoError(t, err)
	require.Equal(t, company.ID, user.CompanyID)
	require.Equal(t, domain.RoleManager, user.Role)
	require.Equal(t, "bea@acme.example", user.Email)

	// Acceptance is terminal: both resolve and accept now report used.
	_, err = env.invitation.ResolveInvitation(ctx, token)
	require.ErrorIs(t, err, ErrInvitationUsed)

	_, err = env.invitation.AcceptInvitation(ctx, token, "Bea", "Baker", "another-password")
	require.ErrorIs(t, err, ErrInvitationUsed)

	// The new member can authenticate and lands in the right company.
	sessionToken, err := env.provider.Authenticate(ctx, "bea@acme.example", "a-long-password")
	require.NoError(t, err)
	principal, err := env.guard.ResolvePrincipal(ctx, sessionToken)
	require.NoError(t, err)
	require.Equal(t, company.ID, principal.CompanyID)
	require.Equal(t, domain.RoleManager, principal.Role)
}

func TestResolveInvitationUnknownToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.invitation.ResolveInvitation(ctx, "no-such-token")
	require.ErrorIs(t, err, ErrInvitationNotFound)

	_, err = env.invitation.AcceptInvitation(ctx, "no-such-token", "A", "B", "a-long-password")
	require.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestExpiredInvitationWinsOverPendingStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, _, admin := env.signupCompany(t, "acme", "ada@acme.example")

	// Insert an invitation that is still pending but past its window.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NoError(t, env.store.Invitations().CreateInvitation(ctx, domain.Invitation{
		ID:        idx.New().String(),
		CompanyID: company.ID,
		Email:     "late@acme.example",
		Role:      domain.RoleEmployee,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
		Status:    domain.InvitationPending,
		CreatedBy: admin.UserID,
	}))

	_, err = env.invitation.ResolveInvitation(ctx, token)
	require.ErrorIs(t, err, ErrInvitationExpired)

	_, err = env.invitation.AcceptInvitation(ctx, token, "Too", "Late", "a-long-password")
	require.ErrorIs(t, err, ErrInvitationExpired)

	// No member was created for the invited email.
	_, err = env.provider.Authenticate(ctx, "late@acme.example", "a-long-password")
	require.Error(t, err)
}

func TestMarkInvitationAcceptedIsConditional(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, _, admin := env.signupCompany(t, "acme", "ada@acme.example")

	_, inv, err := env.invitation.IssueInvitation(ctx, admin, "bea@acme.example", domain.RoleEmployee)
	require.NoError(t, err)

	userID := idx.New().String()
	rows, err := env.store.Invitations().MarkInvitationAccepted(ctx, inv.ID, userID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	// A second consumer of the same row changes nothing.
	rows, err = env.store.Invitations().MarkInvitationAccepted(ctx, inv.ID, idx.New().String())
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)

	listed, err := env.store.Invitations().ListInvitationsByCompany(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, domain.InvitationAccepted, listed[0].Status)
	require.Equal(t, userID, listed[0].AcceptedBy)
}

func TestConcurrentAcceptCreatesOneMember(t *testing.T) {
	env := newFileTestEnv(t)
	ctx := context.Background()

	_, _, admin := env.signupCompany(t, "acme", "ada@acme.example")

	token, _, err := env.invitation.IssueInvitation(ctx, admin, "bea@acme.example", domain.RoleEmployee)
	require.NoError(t, err)

	// Two clients race to redeem the same token.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = env.invitation.AcceptInvitation(ctx, token, "Bea", "Baker", "a-long-password")
		}()
	}
	wg.Wait()

	// Exactly one wins. The loser fails either at the conditional status
	// flip or earlier at account registration, depending on interleaving.
	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrInvitationUsed) || errors.Is(err, ErrEmailTaken):
			lost++
		default:
			t.Fatalf("unexpected accept error: %v", err)
		}
	}
	require.Equal(t, 1, won)
	require.Equal(t, 1, lost)

	// One member row for the invited email, and the invitation is terminal.
	roster, err := env.users.ListMembers(ctx, admin)
	require.NoError(t, err)
	var invited int
	for _, u := range roster {
		if u.Email == "bea@acme.example" {
			invited++
		}
	}
	require.Equal(t, 1, invited)

	listed, err := env.invitation.ListInvitations(ctx, admin)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, domain.InvitationAccepted, listed[0].Status)
}

func TestAcceptInvitationRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, admin := env.signupCompany(t, "acme", "ada@acme.example")
	token, _, err := env.invitation.IssueInvitation(ctx, admin, "bea@acme.example", domain.RoleEmployee)
	require.NoError(t, err)

	_, err = env.invitation.AcceptInvitation(ctx, token, "", "Baker", "a-long-password")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.invitation.AcceptInvitation(ctx, token, "Bea", "Baker", "short")
	require.ErrorIs(t, err, ErrInvalidInput)

	// The failed attempts consumed nothing.
	summary, err := env.invitation.ResolveInvitation(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "bea@acme.example", summary.Email)
}

func TestAcceptInvitationRejectsRegisteredEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, admin := env.signupCompany(t, "acme", "ada@acme.example")

	// An invitation for the admin's own email can't be accepted: the
	// credential account already exists.
	token, _, err := env.invitation.IssueInvitation(ctx, admin, "ada@acme.example", domain.RoleEmployee)
	require.NoError(t, err)

	_, err = env.invitation.AcceptInvitation(ctx, token, "Ada", "Again", "a-long-password")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestListInvitationsIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, admin := env.signupCompany(t, "acme", "ada@acme.example")
	_, manager := env.addMember(t, admin, "mia@acme.example", domain.RoleManager)

	_, err := env.invitation.ListInvitations(ctx, manager)
	require.ErrorIs(t, err, ErrForbidden)

	listed, err := env.invitation.ListInvitations(ctx, admin)
	require.NoError(t, err)
	require.Len(t, listed, 1) // mia's accepted invitation is kept as history
	require.Equal(t, domain.InvitationAccepted, listed[0].Status)
}

func TestInvitationsAreTenantScoped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, acmeAdmin := env.signupCompany(t, "acme", "ada@acme.example")
	_, _, globexAdmin := env.signupCompany(t, "globex", "gus@globex.example")

	_, _, err := env.invitation.IssueInvitation(ctx, acmeAdmin, "a@acme.example", domain.RoleEmployee)
	require.NoError(t, err)

	listed, err := env.invitation.ListInvitations(ctx, globexAdmin)
	require.NoError(t, err)
	require.Empty(t, listed)
}
