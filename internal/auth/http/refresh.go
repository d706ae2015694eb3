package http

import (
	"errors"
	"net/http"

	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/pkg/authsdk"
	"github.com/talentsift/talentsift/pkg/slogx"
)

// RefreshHandler serves POST /v1/auth/refresh.
type RefreshHandler struct {
	TokenService *service.TokenService
	CookieSecure bool
}

// ServeHTTP godoc
//
//	@Summary		Rotate the refresh token
//	@Description	Exchanges the refresh token cookie for a new access token and a new refresh cookie.
//	@Description	The presented refresh token is invalidated; replaying it fails with 401.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	authsdk.AuthResponse	"access_token, token_type, expires_in, user"
//	@Failure		401	{object}	authsdk.APIError		"authentication_error"
//	@Failure		429	{object}	authsdk.APIError		"rate_limit_exceeded"
//	@Failure		500	{object}	authsdk.APIError		"server_error"
//	@Header			200	{string}	Cache-Control			"no-store"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	refreshToken := refreshTokenFromRequest(r)
	if refreshToken == "" {
		authsdk.ErrAuthentication.WithMessage("missing refresh token").WriteError(w)
		return
	}

	pair, user, err := h.TokenService.RefreshTokens(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			clearRefreshCookie(w, h.CookieSecure)
			authsdk.ErrAuthentication.WriteError(w)
			return
		}
		log.Error("token refresh failed", "error", err)
		authsdk.ErrServer.WriteError(w)
		return
	}

	writeAuthResponse(w, pair, user, h.CookieSecure)
}
