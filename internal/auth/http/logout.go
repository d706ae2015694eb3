package http

import (
	"net/http"

	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/pkg/authsdk"
	"github.com/talentsift/talentsift/pkg/httpx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

// LogoutHandler serves POST /v1/auth/logout.
type LogoutHandler struct {
	TokenService *service.TokenService
	CookieSecure bool
}

// ServeHTTP godoc
//
//	@Summary		End the session
//	@Description	Revokes the stored refresh token and clears the refresh cookie. Idempotent:
//	@Description	succeeds whether or not a valid session exists.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	authsdk.GenericResponse	"message"
//	@Failure		500	{object}	authsdk.APIError		"server_error"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.TokenService.Logout(ctx, refreshTokenFromRequest(r)); err != nil {
		slogx.FromContext(ctx).Error("logout failed", "error", err)
		authsdk.ErrServer.WriteError(w)
		return
	}

	clearRefreshCookie(w, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, authsdk.GenericResponse{Message: "logged out"})
}
