package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teamgatehq/teamgate/internal/tenant/identity"
	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

type InvitationAcceptHandler struct {
	InvitationService *service.InvitationService
	Identity          identity.Provider
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Redeem an invitation token: register a credential account for the invited email, create the member record at the invited role, and consume the invitation.
//	@Description	Acceptance is at-most-once; concurrent accepts of the same token create exactly one member. On success the new member is logged in.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.AcceptInvitationRequest	true	"Acceptance request"
//	@Success		201		{object}	tenantsdk.AcceptInvitationResponse	"user, session_token"
//	@Failure		400		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		410		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Router			/invitations/accept [post].
func (h *InvitationAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, err := h.InvitationService.AcceptInvitation(ctx, req.Token, req.FirstName, req.LastName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "token, first_name, last_name and password are required; password must be at least 8 characters",
			})
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
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusConflict, tenantsdk.ErrorResponse{
				Error:            "email_taken",
				ErrorDescription: "An account already exists for this email",
			})
		default:
			log.Error("failed to accept invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to accept invitation",
			})
		}
		return
	}

	// Log the new member in. If this fails they can still log in manually.
	token, err := h.Identity.Authenticate(ctx, user.Email, req.Password)
	if err != nil {
		log.Error("post-acceptance login failed", "err", err)
		token = ""
	}

	httpx.WriteJSON(w, http.StatusCreated, tenantsdk.AcceptInvitationResponse{
		User:         userView(user),
		SessionToken: token,
	})
}
