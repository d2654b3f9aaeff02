package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

type InvitationListHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		List Invitations Endpoint
//	@Description	List the company's invitations, newest first. Admin-only. Status is derived at read time: a pending invitation past its expiry reports "expired".
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	tenantsdk.InvitationListResponse	"invitations"
//	@Failure		401	{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		403	{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		500	{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/invitations [get].
func (h *InvitationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, tenantsdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	invitations, err := h.InvitationService.ListInvitations(ctx, principal)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			httpx.WriteJSON(w, http.StatusForbidden, tenantsdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Only admins can list invitations",
			})
			return
		}
		log.Error("failed to list invitations", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list invitations",
		})
		return
	}

	now := time.Now().UTC()
	out := make([]tenantsdk.InvitationInfo, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, invitationView(inv, now))
	}

	httpx.WriteJSON(w, http.StatusOK, tenantsdk.InvitationListResponse{Invitations: out})
}
