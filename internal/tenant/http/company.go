package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teamgatehq/teamgate/internal/tenant/service"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

type CompanyHandler struct {
	CompanyService *service.CompanyService
}

// HandleGet godoc
//
//	@Summary		Get Company Endpoint
//	@Description	Return the authenticated member's company profile. Any member may read it.
//	@Tags			Company
//	@Produce		json
//	@Success		200	{object}	tenantsdk.CompanyInfo	"company"
//	@Failure		401	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/company [get].
func (h *CompanyHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
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

	company, err := h.CompanyService.GetCompany(ctx, principal)
	if err != nil {
		log.Error("failed to fetch company", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to fetch company",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, companyView(company))
}

// HandleUpdate godoc
//
//	@Summary		Update Company Endpoint
//	@Description	Update the company's name, contact email and industry. Admin-only.
//	@Tags			Company
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.UpdateCompanyRequest	true	"Company profile"
//	@Success		200		{object}	tenantsdk.CompanyInfo			"updated company"
//	@Failure		400		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/company [put].
func (h *CompanyHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req tenantsdk.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	company, err := h.CompanyService.UpdateProfile(ctx, principal, req.Name, req.Email, req.Industry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			httpx.WriteJSON(w, http.StatusForbidden, tenantsdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Only admins can update the company profile",
			})
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "name and email are required",
			})
		default:
			log.Error("failed to update company", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to update company",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, companyView(company))
}
