package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/teamgatehq/teamgate/internal/tenant/domain"
	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList godoc
//
//	@Summary		List Members Endpoint
//	@Description	List the company roster, newest first. Available to every member of the company.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	tenantsdk.UserListResponse	"users"
//	@Failure		401	{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
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

	users, err := h.UserService.ListMembers(ctx, principal)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			httpx.WriteJSON(w, http.StatusForbidden, tenantsdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Not a member of any company",
			})
			return
		}
		log.Error("failed to list members", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list members",
		})
		return
	}

	out := make([]tenantsdk.UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, userView(u))
	}

	httpx.WriteJSON(w, http.StatusOK, tenantsdk.UserListResponse{Users: out})
}

// HandleChangeRole godoc
//
//	@Summary		Change Member Role Endpoint
//	@Description	Set a member's role. Admin-only. Admins cannot change their own role, which keeps every company with at least one admin.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Member user id"
//	@Param			request	body		tenantsdk.ChangeRoleRequest	true	"New role"
//	@Success		200		{object}	tenantsdk.UserInfo			"updated member"
//	@Failure		400		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/users/{id}/role [put].
func (h *UsersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
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

	var req tenantsdk.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	updated, err := h.UserService.ChangeRole(ctx, principal, r.PathValue("id"), domain.Role(req.Role))
	if err != nil {
		h.writeMemberError(w, log, err, "change member role")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userView(updated))
}

// HandleRemove godoc
//
//	@Summary		Remove Member Endpoint
//	@Description	Delete a member record. Admin-only, and never the acting admin themselves. The credential account is left alone; without a member record it grants nothing.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path	string	true	"Member user id"
//	@Success		204	"member removed"
//	@Failure		401	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/users/{id} [delete].
func (h *UsersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
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

	if err := h.UserService.RemoveMember(ctx, principal, r.PathValue("id")); err != nil {
		h.writeMemberError(w, log, err, "remove member")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UsersHandler) writeMemberError(w http.ResponseWriter, log *slog.Logger, err error, op string) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteJSON(w, http.StatusForbidden, tenantsdk.ErrorResponse{
			Error:            "forbidden",
			ErrorDescription: "Only admins can manage members",
		})
	case errors.Is(err, service.ErrSelfAction):
		httpx.WriteJSON(w, http.StatusForbidden, tenantsdk.ErrorResponse{
			Error:            "self_action",
			ErrorDescription: "This operation cannot target your own account",
		})
	case errors.Is(err, service.ErrInvalidRole):
		httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
			Error:            "invalid_role",
			ErrorDescription: "Role must be admin, manager or employee",
		})
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, tenantsdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "No such member in your company",
		})
	default:
		log.Error("failed to "+op, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to " + op,
		})
	}
}
