package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

type ctxKey string

const (
	ctxKeyPrincipal    ctxKey = "principal"
	ctxKeySessionToken ctxKey = "session_token"
)

// BearerToken extracts the bearer token from the Authorization header, or ""
// when absent or malformed.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// PrincipalFromContext returns the principal placed by AuthnMiddleware.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(domain.Principal)
	return p, ok
}

// SessionTokenFromContext returns the raw session token for handlers that
// need to pass it back to the identity provider (logout).
func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ctxKeySessionToken).(string)
	return token
}

// AuthnMiddleware resolves the session token into a principal and rejects
// requests without one. The principal's user id doubles as the per-subject
// rate limit key.
func AuthnMiddleware(guard *service.GuardService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)

			principal, err := guard.ResolvePrincipal(r.Context(), token)
			if err != nil {
				httpx.WriteJSON(w, http.StatusUnauthorized, tenantsdk.ErrorResponse{
					Error:            "unauthorized",
					ErrorDescription: "Authentication required",
				})
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyPrincipal, principal)
			ctx = context.WithValue(ctx, ctxKeySessionToken, token)
			ctx = httpx.WithSubject(ctx, principal.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
