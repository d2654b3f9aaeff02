package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teamgatehq/teamgate/internal/tenant/identity"
	"github.com/teamgatehq/teamgate/pkg/httpx"
	"github.com/teamgatehq/teamgate/pkg/jwtx"
	"github.com/teamgatehq/teamgate/pkg/slogx"
	"github.com/teamgatehq/teamgate/pkg/tenantsdk"
)

// AuthHandler exposes the credential endpoints of the identity provider.
type AuthHandler struct {
	Identity   identity.Provider
	SessionTTL int // seconds, reported in login responses
}

// HandleRegister godoc
//
//	@Summary		Account Registration Endpoint
//	@Description	Create a bare credential account. The account grants nothing until it is linked to a company, either through company signup or an invitation.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	tenantsdk.RegisterResponse	"identity_ref"
//	@Failure		400		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	identityRef, err := h.Identity.Register(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrWeakPassword):
			httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
				Error:            "weak_password",
				ErrorDescription: "Password must be at least 8 characters",
			})
		case errors.Is(err, identity.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Email is required",
			})
		case errors.Is(err, identity.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusConflict, tenantsdk.ErrorResponse{
				Error:            "email_taken",
				ErrorDescription: "An account already exists for this email",
			})
		default:
			log.Error("account registration failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to register account",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tenantsdk.RegisterResponse{IdentityRef: identityRef})
}

// HandleLogin godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password, returning a bearer session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	tenantsdk.LoginResponse	"session_token, token_type, expires_in"
//	@Failure		400		{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	token, err := h.Identity.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, tenantsdk.ErrorResponse{
				Error:            "invalid_credentials",
				ErrorDescription: "Email or password is incorrect",
			})
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to log in",
		})
		return
	}

	expiresIn := h.SessionTTL
	if expiresIn <= 0 {
		expiresIn = int(jwtx.DefaultSessionTTL.Seconds())
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tenantsdk.LoginResponse{
		SessionToken: token,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
	})
}

// HandleLogout godoc
//
//	@Summary		Logout Endpoint
//	@Description	Revoke the current session. The token stops working immediately, before its natural expiry.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"session revoked"
//	@Failure		401	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := SessionTokenFromContext(ctx)
	if token == "" {
		token = BearerToken(r)
	}
	if token == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, tenantsdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	if err := h.Identity.Invalidate(ctx, token); err != nil {
		log.Error("logout failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to log out",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
