package tenant_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

// TestInvitationFlow tests the complete invitation flow:
// 1. Sign up a company
// 2. Issue an invitation for a manager
// 3. Resolve the token (what the accept page renders)
// 4. Accept the invitation
// 5. Verify the new member lands logged in with the right role
func TestInvitationFlow(t *testing.T) {
	baseURL, cleanup := setupTenantContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)

	signupResp, admin := signupCompany(t, client, "acme", "ada@acme.example")

	inviteResp, err := admin.IssueInvitation(t.Context(), "mia@acme.example", "manager")
	require.NoError(t, err)
	require.NotEmpty(t, inviteResp.InvitationToken)
	require.Equal(t, "mia@acme.example", inviteResp.Email)
	require.Equal(t, "manager", inviteResp.Role)
	require.True(t, inviteResp.ExpiresAt.After(time.Now()), "Expiry should be in the future")
	require.Contains(t, inviteResp.InvitationURL, "/invitations/accept/"+inviteResp.InvitationToken,
		"Shareable link should embed the token")

	t.Logf("Invitation issued, expires %s", inviteResp.ExpiresAt.Format(time.RFC3339))

	summary, err := client.ResolveInvitation(t.Context(), inviteResp.InvitationToken)
	require.NoError(t, err)
	require.Equal(t, "mia@acme.example", summary.Email)
	require.Equal(t, "manager", summary.Role)
	require.Equal(t, signupResp.Company.ID, summary.CompanyID)
	require.Equal(t, "acme", summary.CompanyName)

	acceptResp, memberSession, err := client.AcceptInvitation(t.Context(), tenantsdk.AcceptInvitationRequest{
		Token:     inviteResp.InvitationToken,
		FirstName: "Mia",
		LastName:  "Manager",
		Password:  memberPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "manager", acceptResp.User.Role)
	require.Equal(t, signupResp.Company.ID, acceptResp.User.CompanyID)
	require.Equal(t, "mia@acme.example", acceptResp.User.Email)

	me, err := memberSession.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, acceptResp.User.ID, me.User.ID)
	require.Equal(t, "acme", me.Company.Name)

	t.Logf("New member %s joined company %s", me.User.ID, me.Company.ID)
}

// TestInvitationSingleUse verifies an accepted invitation cannot be resolved
// or accepted again.
func TestInvitationSingleUse(t *testing.T) {
	baseURL, cleanup := setupTenantContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)

	_, admin := signupCompany(t, client, "acme", "ada@acme.example")

	inviteResp, err := admin.IssueInvitation(t.Context(), "eve@acme.example", "employee")
	require.NoError(t, err)

	_, _, err = client.AcceptInvitation(t.Context(), tenantsdk.AcceptInvitationRequest{
		Token:     inviteResp.InvitationToken,
		FirstName: "Eve",
		LastName:  "Employee",
		Password:  memberPassword,
	})
	require.NoError(t, err)

	_, err = client.ResolveInvitation(t.Context(), inviteResp.InvitationToken)
	assertAPIError(t, err, 409, "invitation_used")

	_, _, err = client.AcceptInvitation(t.Context(), tenantsdk.AcceptInvitationRequest{
		Token:     inviteResp.InvitationToken,
		FirstName: "Evil",
		LastName:  "Twin",
		Password:  "AnotherPass123!",
	})
	assertAPIError(t, err, 409, "invitation_used")
}

// TestInvitationValidation tests rejected invitation operations.
func TestInvitationValidation(t *testing.T) {
	baseURL, cleanup := setupTenantContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)

	_, admin := signupCompany(t, client, "acme", "ada@acme.example")

	t.Run("UnknownToken", func(t *testing.T) {
		_, err := client.ResolveInvitation(t.Context(), "not-a-real-token")
		assertAPIError(t, err, 404, "invitation_not_found")
	})

	t.Run("AdminRoleNotInvitable", func(t *testing.T) {
		_, err := admin.IssueInvitation(t.Context(), "x@acme.example", "admin")
		assertAPIError(t, err, 400, "invalid_role")
	})

	t.Run("BogusRole", func(t *testing.T) {
		_, err := admin.IssueInvitation(t.Context(), "x@acme.example", "owner")
		assertAPIError(t, err, 400, "invalid_role")
	})

	t.Run("MissingEmail", func(t *testing.T) {
		_, err := admin.IssueInvitation(t.Context(), "", "employee")
		assertAPIError(t, err, 400, "invalid_request")
	})

	t.Run("NonAdminCannotInvite", func(t *testing.T) {
		_, manager := inviteAndAccept(t, client, admin, "mia@acme.example", "manager")

		_, err := manager.IssueInvitation(t.Context(), "x@acme.example", "employee")
		assertAPIError(t, err, 403, "forbidden")
	})

	t.Run("MissingNameOnAccept", func(t *testing.T) {
		inviteResp, err := admin.IssueInvitation(t.Context(), "y@acme.example", "employee")
		require.NoError(t, err)

		_, _, err = client.AcceptInvitation(t.Context(), tenantsdk.AcceptInvitationRequest{
			Token:    inviteResp.InvitationToken,
			LastName: "NoFirst",
			Password: memberPassword,
		})
		assertAPIError(t, err, 400, "invalid_request")
	})
}

// TestInvitationListing verifies the admin-only invitation history.
func TestInvitationListing(t *testing.T) {
	baseURL, cleanup := setupTenantContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)

	_, admin := signupCompany(t, client, "acme", "ada@acme.example")

	_, err := admin.IssueInvitation(t.Context(), "pending@acme.example", "employee")
	require.NoError(t, err)

	_, manager := inviteAndAccept(t, client, admin, "mia@acme.example", "manager")

	listResp, err := admin.ListInvitations(t.Context())
	require.NoError(t, err)
	require.Len(t, listResp.Invitations, 2)

	statuses := map[string]string{}
	for _, inv := range listResp.Invitations {
		statuses[inv.Email] = inv.Status
	}
	require.Equal(t, "pending", statuses["pending@acme.example"])
	require.Equal(t, "accepted", statuses["mia@acme.example"])

	// Managers can't read the listing
	_, err = manager.ListInvitations(t.Context())
	assertAPIError(t, err, 403, "forbidden")
}
