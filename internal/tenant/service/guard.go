package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/identity"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
	"github.com/teamgatehq/teamgate/pkg/slogx"
)

// GuardService turns session tokens into principals. Every authenticated
// request goes through ResolvePrincipal before any handler logic runs, so
// authorization decisions always see a fresh role from the database rather
// than whatever was true when the token was minted.
type GuardService struct {
	Store    store.Store
	Identity identity.Provider
}

// ResolvePrincipal verifies the session token and loads the member record it
// belongs to. A valid credential with no membership is still unauthenticated
// as far as tenant operations are concerned.
func (s *GuardService) ResolvePrincipal(ctx context.Context, token string) (domain.Principal, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		return domain.Principal{}, ErrUnauthenticated
	}

	identityRef, err := s.Identity.CurrentPrincipalIdentity(ctx, token)
	if err != nil {
		if errors.Is(err, identity.ErrSessionInvalid) {
			return domain.Principal{}, ErrUnauthenticated
		}
		log.Error("failed to resolve session", slog.Any("error", err))
		return domain.Principal{}, err
	}

	user, err := s.Store.Users().GetUserByIdentityRef(ctx, identityRef)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("authenticated identity has no member record",
				slog.String("identity_ref", identityRef),
			)
			return domain.Principal{}, ErrUnauthenticated
		}
		log.Error("failed to load member record", slog.Any("error", err))
		return domain.Principal{}, err
	}

	return domain.Principal{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Role:      user.Role,
	}, nil
}

// CurrentUser is ResolvePrincipal plus the full member record, for the
// profile endpoint.
func (s *GuardService) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	p, err := s.ResolvePrincipal(ctx, token)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnauthenticated
		}
		return domain.User{}, err
	}
	return user, nil
}

// RequireRole checks the principal's role against an allow list. Unknown
// roles fail closed.
func RequireRole(p domain.Principal, allowed ...domain.Role) error {
	if !p.Role.Valid() {
		return ErrForbidden
	}
	if slices.Contains(allowed, p.Role) {
		return nil
	}
	return ErrForbidden
}

// RequireSameCompany enforces tenant isolation for operations whose target
// carries a company id. Callers that must not confirm a foreign record
// exists map the ErrForbidden to ErrNotFound themselves.
func RequireSameCompany(p domain.Principal, companyID string) error {
	if companyID == "" || p.CompanyID != companyID {
		return ErrForbidden
	}
	return nil
}
