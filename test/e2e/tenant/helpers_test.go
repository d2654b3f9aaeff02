package tenant_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for tenant service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "teamgate-tenant-test:latest"

	adminFirstName = "Ada"
	adminLastName  = "Admin"
	adminPassword  = "Admin123!pass"
	memberPassword = "Member123!pass"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Tenant Service Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up Tenant Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/tenant/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupTenantContainer starts the tenant service in a container and returns
// the base URL. Rate limits are relaxed so tests can make rapid requests
// without tripping the production defaults.
func setupTenantContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TENANT_DATABASE_FILE": "/tmp/tenant.db",
			"TENANT_ISSUER":        "teamgate-tenant",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
			// Increase rate limits for E2E tests to prevent test failures
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupTenantContainerWithDefaultRateLimits starts the tenant service with
// DEFAULT rate limits. This is specifically for testing that rate limiting
// actually works; everything else should use setupTenantContainer().
func setupTenantContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TENANT_DATABASE_FILE": "/tmp/tenant.db",
			"TENANT_ISSUER":        "teamgate-tenant",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
			// NOTE: No rate limit overrides - production defaults apply
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signupCompany creates a company with its first admin and returns the
// response plus the admin's logged-in session.
func signupCompany(t *testing.T, client *tenantsdk.Client, companyName, adminEmail string) (tenantsdk.CompanySignupResponse, *tenantsdk.Session) {
	t.Helper()

	resp, session, err := client.SignupCompany(t.Context(), tenantsdk.CompanySignupRequest{
		CompanyName:  companyName,
		CompanyEmail: "contact@" + companyName + ".example",
		Industry:     "Software",
		FirstName:    adminFirstName,
		LastName:     adminLastName,
		Email:        adminEmail,
		Password:     adminPassword,
	})
	require.NoError(t, err, "Company signup should succeed")
	require.NotEmpty(t, resp.Company.ID, "Company ID should not be empty")
	require.NotEmpty(t, resp.User.ID, "Admin user ID should not be empty")
	require.Equal(t, "admin", resp.User.Role, "First user should be admin")
	require.NotEmpty(t, resp.SessionToken, "Signup should return a live session")
	require.NotNil(t, session)

	return resp, session
}

// inviteAndAccept runs the full invitation flow for one new member and
// returns the created user plus their logged-in session.
func inviteAndAccept(t *testing.T, client *tenantsdk.Client, admin *tenantsdk.Session, email, role string) (tenantsdk.UserInfo, *tenantsdk.Session) {
	t.Helper()

	inviteResp, err := admin.IssueInvitation(t.Context(), email, role)
	require.NoError(t, err, "Issuing invitation should succeed")
	require.NotEmpty(t, inviteResp.InvitationToken, "Invitation token should be generated")

	acceptResp, session, err := client.AcceptInvitation(t.Context(), tenantsdk.AcceptInvitationRequest{
		Token:     inviteResp.InvitationToken,
		FirstName: "New",
		LastName:  "Member",
		Password:  memberPassword,
	})
	require.NoError(t, err, "Accepting invitation should succeed")
	require.Equal(t, role, acceptResp.User.Role)
	require.NotEmpty(t, acceptResp.SessionToken, "Acceptance should return a live session")

	return acceptResp.User, session
}

// assertAPIError checks that an error is an APIError with the given status
// and machine-readable code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *tenantsdk.APIError
	require.ErrorAs(t, err, &apiErr, "Should return APIError, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode, "Unexpected HTTP status, error: %v", err)
	require.Equal(t, code, apiErr.Code, "Unexpected error code, error: %v", err)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health tenantsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
}
