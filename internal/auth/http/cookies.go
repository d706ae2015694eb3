package http

import (
	"net/http"
	"time"
)

// RefreshCookieName is the cookie carrying the refresh token. The token never
// appears in a response body; browsers replay it automatically on the refresh
// and logout endpoints.
const RefreshCookieName = "refresh_token"

// cookiePath keeps the refresh token off every request except the auth
// endpoints that actually consume it.
const cookiePath = "/v1/auth"

func setRefreshCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     cookiePath,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearRefreshCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func refreshTokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(RefreshCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
