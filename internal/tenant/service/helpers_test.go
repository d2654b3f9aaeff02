package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/identity"
	"github.com/teamgatehq/teamgate/internal/tenant/store/drivers/sqlite"
	"github.com/teamgatehq/teamgate/pkg/jwtx"
)

// testEnv wires the full service stack against an in-memory database.
type testEnv struct {
	store      *sqlite.Store
	provider   *identity.Local
	guard      *GuardService
	onboarding *OnboardingService
	invitation *InvitationService
	users      *UserService
	company    *CompanyService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithDSN(t, ":memory:")
}

// newFileTestEnv backs the store with a file in a temp dir. An in-memory
// database gives every pooled connection its own schema, so tests that hit
// the store from multiple goroutines need a real file.
func newFileTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "tenant.db") + "?_busy_timeout=5000&_journal_mode=WAL"
	return newTestEnvWithDSN(t, dsn)
}

func newTestEnvWithDSN(t *testing.T, dsn string) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewEphemeralSigner("test-issuer")
	require.NoError(t, err)

	provider := identity.NewLocal(st, signer, time.Hour)

	return &testEnv{
		store:      st,
		provider:   provider,
		guard:      &GuardService{Store: st, Identity: provider},
		onboarding: &OnboardingService{Store: st, Identity: provider},
		invitation: &InvitationService{Store: st, Identity: provider},
		users:      &UserService{Store: st},
		company:    &CompanyService{Store: st},
	}
}

// signupCompany creates a company with its first admin and returns the
// records plus the admin's principal.
func (e *testEnv) signupCompany(t *testing.T, companyName, adminEmail string) (domain.Company, domain.User, domain.Principal) {
	t.Helper()
	ctx := context.Background()

	company, admin, token, err := e.onboarding.SignupCompany(ctx, SignupCompanyInput{
		CompanyName:  companyName,
		CompanyEmail: "contact@" + companyName + ".example",
		Industry:     "Software",
		FirstName:    "Ada",
		LastName:     "Admin",
		Email:        adminEmail,
		Password:     "correct-horse-battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := e.guard.ResolvePrincipal(ctx, token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, principal.Role)

	return company, admin, principal
}

// addMember issues and accepts an invitation, returning the created member
// and their principal.
func (e *testEnv) addMember(t *testing.T, admin domain.Principal, email string, role domain.Role) (domain.User, domain.Principal) {
	t.Helper()
	ctx := context.Background()

	token, _, err := e.invitation.IssueInvitation(ctx, admin, email, role)
	require.NoError(t, err)

	user, err := e.invitation.AcceptInvitation(ctx, token, "New", "Member", "a-long-password")
	require.NoError(t, err)

	sessionToken, err := e.provider.Authenticate(ctx, email, "a-long-password")
	require.NoError(t, err)

	principal, err := e.guard.ResolvePrincipal(ctx, sessionToken)
	require.NoError(t, err)
	require.Equal(t, role, principal.Role)

	return user, principal
}
