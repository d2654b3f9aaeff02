package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
)

func TestSignupCompanyCreatesBothRecords(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, admin, token, err := env.onboarding.SignupCompany(ctx, SignupCompanyInput{
		CompanyName:  "Acme Widgets",
		CompanyEmail: "Contact@Acme.example",
		Industry:     "Manufacturing",
		FirstName:    "Ada",
		LastName:     "Admin",
		Email:        "Ada@Acme.example",
		Password:     "correct-horse-battery",
	})
	require.NoError(t, err)

	require.Equal(t, "Acme Widgets", company.Name)
	require.Equal(t, "contact@acme.example", company.Email)
	require.Equal(t, "Manufacturing", company.Industry)

	require.Equal(t, company.ID, admin.CompanyID)
	require.Equal(t, domain.RoleAdmin, admin.Role)
	require.Equal(t, "ada@acme.example", admin.Email)
	require.NotEmpty(t, admin.IdentityRef)

	// The returned token is a live session for the new admin.
	principal, err := env.guard.ResolvePrincipal(ctx, token)
	require.NoError(t, err)
	require.Equal(t, admin.ID, principal.UserID)
	require.Equal(t, company.ID, principal.CompanyID)

	stored, err := env.store.Companies().GetCompanyByID(ctx, company.ID)
	require.NoError(t, err)
	require.Equal(t, company.Name, stored.Name)
}

func TestSignupCompanyIndustryIsOptional(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, _, _, err := env.onboarding.SignupCompany(ctx, SignupCompanyInput{
		CompanyName:  "Globex",
		CompanyEmail: "contact@globex.example",
		FirstName:    "Gus",
		LastName:     "Gruber",
		Email:        "gus@globex.example",
		Password:     "correct-horse-battery",
	})
	require.NoError(t, err)
	require.Empty(t, company.Industry)
}

func TestSignupCompanyValidatesBeforeWriting(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []SignupCompanyInput{
		{CompanyEmail: "c@x.example", FirstName: "A", LastName: "B", Email: "a@x.example", Password: "a-long-password"},
		{CompanyName: "X", FirstName: "A", LastName: "B", Email: "a@x.example", Password: "a-long-password"},
		{CompanyName: "X", CompanyEmail: "c@x.example", LastName: "B", Email: "a@x.example", Password: "a-long-password"},
		{CompanyName: "X", CompanyEmail: "c@x.example", FirstName: "A", Email: "a@x.example", Password: "a-long-password"},
		{CompanyName: "X", CompanyEmail: "c@x.example", FirstName: "A", LastName: "B", Password: "a-long-password"},
		{CompanyName: "X", CompanyEmail: "c@x.example", FirstName: "A", LastName: "B", Email: "a@x.example"},
	}
	for _, in := range cases {
		_, _, _, err := env.onboarding.SignupCompany(ctx, in)
		require.ErrorIs(t, err, ErrInvalidInput)
	}

	// Nothing was written: the email is still free to register.
	_, err := env.store.Accounts().GetAccountByEmail(ctx, "a@x.example")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSignupCompanyWeakPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, _, err := env.onboarding.SignupCompany(ctx, SignupCompanyInput{
		CompanyName:  "Acme",
		CompanyEmail: "contact@acme.example",
		FirstName:    "Ada",
		LastName:     "Admin",
		Email:        "ada@acme.example",
		Password:     "short",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignupCompanyDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signupCompany(t, "acme", "ada@acme.example")

	// Same admin email again, even for a different company.
	_, _, _, err := env.onboarding.SignupCompany(ctx, SignupCompanyInput{
		CompanyName:  "Acme Two",
		CompanyEmail: "contact@acme2.example",
		FirstName:    "Ada",
		LastName:     "Again",
		Email:        "ADA@acme.example",
		Password:     "correct-horse-battery",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupCompanyTenantsAreIndependent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	acme, _, acmeAdmin := env.signupCompany(t, "acme", "ada@acme.example")
	globex, _, globexAdmin := env.signupCompany(t, "globex", "gus@globex.example")

	require.NotEqual(t, acme.ID, globex.ID)

	acmeRoster, err := env.users.ListMembers(ctx, acmeAdmin)
	require.NoError(t, err)
	require.Len(t, acmeRoster, 1)
	require.Equal(t, acme.ID, acmeRoster[0].CompanyID)

	globexRoster, err := env.users.ListMembers(ctx, globexAdmin)
	require.NoError(t, err)
	require.Len(t, globexRoster, 1)
	require.Equal(t, globex.ID, globexRoster[0].CompanyID)
}
