package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

// TestLoginRateLimiting verifies that the strict IP limit actually trips on
// repeated credential attempts. This test runs against production defaults,
// unlike the rest of the suite.
func TestLoginRateLimiting(t *testing.T) {
	baseURL, cleanup := setupTenantContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)

	signupCompany(t, client, "acme", "ada@acme.example")

	// Hammer the login endpoint with bad credentials until the limiter kicks
	// in. The strict burst is small, so 50 attempts is plenty.
	limited := false
	for i := 0; i < 50; i++ {
		_, err := client.Login(t.Context(), "ada@acme.example", "WrongPassword1!")
		require.Error(t, err)

		var apiErr *tenantsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		if apiErr.StatusCode == 429 {
			limited = true
			break
		}
		require.Equal(t, 401, apiErr.StatusCode)
	}
	require.True(t, limited, "Repeated login attempts should eventually be rate limited")

	t.Logf("Login rate limit tripped as expected")
}
