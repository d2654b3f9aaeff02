package sqlite

import (
	"context"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/store/drivers/sqlite/gen"
)

type invitationsRepo struct {
	q *gen.Queries
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	return r.q.CreateInvitation(ctx, gen.CreateInvitationParams{
		ID:        inv.ID,
		CompanyID: inv.CompanyID,
		Email:     inv.Email,
		Role:      inv.Role.String(),
		TokenHash: inv.TokenHash,
		ExpiresAt: inv.ExpiresAt,
		CreatedBy: mapStringNull(inv.CreatedBy),
	})
}

func (r *invitationsRepo) GetInvitationByTokenHash(
	ctx context.Context,
	hash string,
) (domain.Invitation, error) {
	row, err := r.q.GetInvitationByTokenHash(ctx, hash)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return mapInvitation(row), nil
}

func (r *invitationsRepo) ListInvitationsByCompany(
	ctx context.Context,
	companyID string,
) ([]domain.Invitation, error) {
	rows, err := r.q.ListInvitationsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	invitations := make([]domain.Invitation, 0, len(rows))
	for _, row := range rows {
		invitations = append(invitations, mapInvitation(row))
	}
	return invitations, nil
}

func (r *invitationsRepo) MarkInvitationAccepted(
	ctx context.Context,
	invitationID string,
	acceptedByUserID string,
) (int64, error) {
	return r.q.MarkInvitationAccepted(ctx, gen.MarkInvitationAcceptedParams{
		AcceptedBy: mapStringNull(acceptedByUserID),
		ID:         invitationID,
	})
}
