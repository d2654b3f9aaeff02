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

type CompanySignupHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP godoc
//
//	@Summary		Company Signup Endpoint
//	@Description	Create a new company together with its first admin user. Both records are created atomically; a company never exists without an admin.
//	@Description	On success the new admin is logged in and a session token is returned.
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.CompanySignupRequest	true	"Company signup request"
//	@Success		201		{object}	tenantsdk.CompanySignupResponse	"company, user, session_token"
//	@Failure		400		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Router			/onboarding/company-signup [post].
func (h *CompanySignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.CompanySignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	company, admin, token, err := h.OnboardingService.SignupCompany(ctx, service.SignupCompanyInput{
		CompanyName:  req.CompanyName,
		CompanyEmail: req.CompanyEmail,
		Industry:     req.Industry,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Missing or invalid signup fields",
			})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusConflict, tenantsdk.ErrorResponse{
				Error:            "email_taken",
				ErrorDescription: "An account already exists for this email",
			})
		default:
			log.Error("company signup failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to sign up company",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tenantsdk.CompanySignupResponse{
		Company:      companyView(company),
		User:         userView(admin),
		SessionToken: token,
	})
}
