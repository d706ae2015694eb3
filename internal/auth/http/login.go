package http

import (
	"errors"
	"net/http"

	"github.com/talentsift/talentsift/internal/auth/domain"
	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/pkg/authsdk"
	"github.com/talentsift/talentsift/pkg/httpx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

// LoginHandler serves POST /v1/auth/login.
type LoginHandler struct {
	TokenService *service.TokenService
	CookieSecure bool
}

// ServeHTTP godoc
//
//	@Summary		Authenticate with email and password
//	@Description	Verifies the credentials and issues an access token. The refresh token is set as
//	@Description	an http-only cookie and never appears in the response body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.AuthResponse	"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	authsdk.APIError		"validation_error"
//	@Failure		401		{object}	authsdk.APIError		"authentication_error"
//	@Failure		403		{object}	authsdk.APIError		"verification_required"
//	@Failure		429		{object}	authsdk.APIError		"rate_limit_exceeded"
//	@Failure		500		{object}	authsdk.APIError		"server_error"
//	@Header			200		{string}	Cache-Control			"no-store"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pair, user, err := h.TokenService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			authsdk.ErrAuthentication.WriteError(w)
		case errors.Is(err, service.ErrEmailNotVerified):
			authsdk.ErrVerificationRequired.WriteError(w)
		default:
			log.Error("login failed", "error", err)
			authsdk.ErrServer.WriteError(w)
		}
		return
	}

	writeAuthResponse(w, pair, user, h.CookieSecure)
}

// writeAuthResponse sets the refresh cookie and writes the access token
// envelope shared by login, refresh, verify-email, and reset-password.
func writeAuthResponse(w http.ResponseWriter, pair *domain.TokenPair, user domain.User, cookieSecure bool) {
	setRefreshCookie(w, pair.RefreshToken, pair.RefreshTTL, cookieSecure)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		AccessToken: pair.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(pair.ExpiresIn.Seconds()),
		User:        userSummary(user),
	})
}

func userSummary(u domain.User) authsdk.UserSummary {
	return authsdk.UserSummary{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Organization:  u.Organization,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
