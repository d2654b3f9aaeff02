package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

type InvitationIssueHandler struct {
	InvitationService *service.InvitationService

	// PublicBaseURL is used to build the shareable accept link. Delivery of
	// that link (email etc.) is the caller's responsibility.
	PublicBaseURL string
}

// ServeHTTP godoc
//
//	@Summary		Issue Invitation Endpoint
//	@Description	Mint an invitation token for a new company member. Admin-only. The raw token appears only in this response; the service stores a fingerprint.
//	@Description	Invitations can target the manager or employee role; there is no invitation path to admin.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.InviteRequest		true	"Invitation request"
//	@Success		201		{object}	tenantsdk.InviteResponse	"invitation_token, invitation_url, email, role, expires_at"
//	@Failure		400		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/invitations [post].
func (h *InvitationIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req tenantsdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	token, inv, err := h.InvitationService.IssueInvitation(ctx, principal, req.Email, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			httpx.WriteJSON(w, http.StatusForbidden, tenantsdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Only admins can issue invitations",
			})
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
				Error:            "invalid_role",
				ErrorDescription: "Role must be manager or employee",
			})
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "email is required",
			})
		default:
			log.Error("failed to issue invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to issue invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tenantsdk.InviteResponse{
		InvitationToken: token,
		InvitationURL:   strings.TrimRight(h.PublicBaseURL, "/") + "/invitations/accept/" + token,
		Email:           inv.Email,
		Role:            inv.Role.String(),
		ExpiresAt:       inv.ExpiresAt,
	})
}
