package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/identity"
	"github.com/teamgatehq/teamgate/internal/tenant/store"
	"github.com/teamgatehq/teamgate/pkg/cryptox"
	"github.com/teamgatehq/teamgate/pkg/idx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
)

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrInvitationUsed     = errors.New("invitation has already been accepted")
	ErrEmailTaken         = errors.New("email already registered")
)

type InvitationService struct {
	Store    store.Store
	Identity identity.Provider
}

// IssueInvitation mints a new invitation token for the actor's company.
// Only admins may invite, and only to the manager or employee role; there is
// no invitation path to admin.
func (s *InvitationService) IssueInvitation(
	ctx context.Context,
	actor domain.Principal,
	email string,
	role domain.Role,
) (string, domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Authorize: issuing is admin-only.
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		log.Warn("non-admin attempted to issue invitation",
			slog.String("user_id", actor.UserID),
			slog.String("role", actor.Role.String()),
		)
		return "", domain.Invitation{}, err
	}

	// 2. Validate input.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", domain.Invitation{}, ErrInvalidInput
	}
	if !role.Invitable() {
		log.Warn("attempted to issue invitation with non-invitable role",
			slog.String("user_id", actor.UserID),
			slog.String("role", role.String()),
		)
		return "", domain.Invitation{}, ErrInvalidRole
	}

	// 3. Generate random token and fingerprint it. Only the fingerprint is
	// ever stored.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return "", domain.Invitation{}, err
	}
	fingerprint := cryptox.FingerprintToken(token)

	inv := domain.Invitation{
		ID:        idx.New().String(),
		CompanyID: actor.CompanyID,
		Email:     email,
		Role:      role,
		TokenHash: fingerprint,
		ExpiresAt: time.Now().UTC().Add(domain.InvitationTTL),
		Status:    domain.InvitationPending,
		CreatedBy: actor.UserID,
	}

	// 4. Store the invitation.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Invitations().CreateInvitation(ctx, inv)
	})
	if err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return "", domain.Invitation{}, err
	}

	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("company_id", inv.CompanyID),
		slog.String("role", inv.Role.String()),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	// 5. Return the raw token (not the fingerprint).
	return token, inv, nil
}

// ResolveInvitation looks up an invitation by its raw token and returns what
// the accept page needs to render. Expiry wins over every other state: a
// pending-but-expired invitation reports expired, never pending.
func (s *InvitationService) ResolveInvitation(
	ctx context.Context,
	token string,
) (domain.InvitationSummary, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		return domain.InvitationSummary{}, ErrInvitationNotFound
	}

	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InvitationSummary{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.InvitationSummary{}, err
	}

	if inv.Expired(time.Now().UTC()) {
		return domain.InvitationSummary{}, ErrInvitationExpired
	}
	if inv.Status == domain.InvitationAccepted {
		return domain.InvitationSummary{}, ErrInvitationUsed
	}

	company, err := s.Store.Companies().GetCompanyByID(ctx, inv.CompanyID)
	if err != nil {
		log.Error("failed to fetch company for invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.InvitationSummary{}, err
	}

	return domain.InvitationSummary{
		Email:       inv.Email,
		Role:        inv.Role,
		CompanyID:   inv.CompanyID,
		CompanyName: company.Name,
		ExpiresAt:   inv.ExpiresAt,
	}, nil
}

// AcceptInvitation redeems an invitation: it registers a credential account
// for the invited email, creates the member record at the invited role, and
// marks the invitation accepted. The member insert and the status flip are
// one transaction; the flip is conditional on the invitation still being
// pending, so concurrent accepts of the same token produce exactly one
// member.
func (s *InvitationService) AcceptInvitation(
	ctx context.Context,
	token string,
	firstName string,
	lastName string,
	password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if token == "" || firstName == "" || lastName == "" || password == "" {
		return domain.User{}, ErrInvalidInput
	}

	// 2. Look up and gate the invitation. Expiry is checked before status.
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("acceptance attempted with unknown invitation token")
			return domain.User{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.User{}, err
	}
	if inv.Expired(time.Now().UTC()) {
		return domain.User{}, ErrInvitationExpired
	}
	if inv.Status == domain.InvitationAccepted {
		return domain.User{}, ErrInvitationUsed
	}

	// 3. Register the credential account for the invited email. This sits
	// outside the membership transaction; if the transaction loses the race
	// below, the orphaned account has no membership and grants nothing.
	identityRef, err := s.Identity.Register(ctx, inv.Email, password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return domain.User{}, ErrEmailTaken
		}
		if errors.Is(err, identity.ErrWeakPassword) {
			return domain.User{}, ErrInvalidInput
		}
		log.Error("failed to register account for invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	// 4. Create the member and consume the invitation atomically.
	newUser := domain.User{
		ID:          idx.New().String(),
		CompanyID:   inv.CompanyID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       inv.Email,
		Role:        inv.Role,
		IdentityRef: identityRef,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, newUser); err != nil {
			log.Error("failed to create member from invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
			return err
		}

		rows, err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID, newUser.ID)
		if err != nil {
			log.Error("failed to mark invitation accepted",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
			return err
		}
		if rows == 0 {
			// Someone else consumed the token between our read and this
			// update. Roll everything back.
			return ErrInvitationUsed
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("user_id", newUser.ID),
		slog.String("company_id", newUser.CompanyID),
		slog.String("role", newUser.Role.String()),
	)

	return newUser, nil
}

// ListInvitations returns the actor's company's invitations, newest first.
// Admin-only, like issuing.
func (s *InvitationService) ListInvitations(
	ctx context.Context,
	actor domain.Principal,
) ([]domain.Invitation, error) {
	if err := RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.Store.Invitations().ListInvitationsByCompany(ctx, actor.CompanyID)
}
