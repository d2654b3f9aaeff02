package http

import (
	"errors"
	"net/http"

	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

type InvitationResolveHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Resolve Invitation Endpoint
//	@Description	Look up an invitation by its raw token so the accept page can render who is invited, to which company, at what role.
//	@Description	Expired invitations report 410 regardless of stored status; accepted ones report 409.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string								true	"Raw invitation token"
//	@Success		200		{object}	tenantsdk.InvitationSummaryResponse	"email, role, company_id, company_name, expires_at"
//	@Failure		404		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		410		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Router			/invitations/{token} [get].
func (h *InvitationResolveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	summary, err := h.InvitationService.ResolveInvitation(ctx, r.PathValue("token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, tenantsdk.ErrorResponse{
				Error:            "invitation_not_found",
				ErrorDescription: "Invitation does not exist",
			})
		case errors.Is(err, service.ErrInvitationExpired):
			httpx.WriteJSON(w, http.StatusGone, tenantsdk.ErrorResponse{
				Error:            "invitation_expired",
				ErrorDescription: "Invitation has expired",
			})
		case errors.Is(err, service.ErrInvitationUsed):
			httpx.WriteJSON(w, http.StatusConflict, tenantsdk.ErrorResponse{
				Error:            "invitation_used",
				ErrorDescription: "Invitation has already been accepted",
			})
		default:
			log.Error("failed to resolve invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to resolve invitation",
			})
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tenantsdk.InvitationSummaryResponse{
		Email:       summary.Email,
		Role:        summary.Role.String(),
		CompanyID:   summary.CompanyID,
		CompanyName: summary.CompanyName,
		ExpiresAt:   summary.ExpiresAt,
	})
}
