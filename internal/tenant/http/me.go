package http

import (
	"net/http"

	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

type MeHandler struct {
	GuardService   *service.GuardService
	CompanyService *service.CompanyService
}

// ServeHTTP godoc
//
//	@Summary		Current Member Endpoint
//	@Description	Return the authenticated member's own profile together with their company.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	tenantsdk.MeResponse	"user, company"
//	@Failure		401	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	user, err := h.GuardService.Store.Users().GetUserByID(ctx, principal.UserID)
	if err != nil {
		log.Error("failed to load own profile", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to load profile",
		})
		return
	}

	company, err := h.CompanyService.GetCompany(ctx, principal)
	if err != nil {
		log.Error("failed to load own company", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to load profile",
		})
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tenantsdk.MeResponse{
		User:    userView(user),
		Company: companyView(company),
	})
}
