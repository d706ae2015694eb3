package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/talentsift/talentsift/pkg/jwtx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

// AuthnMiddleware extracts the bearer access token from the Authorization
// header, verifies it, and attaches the resolved identity to the request
// context. Missing, malformed, expired and forged tokens are all rejected with
// the same 401 response; the distinction is only logged.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("access token verification failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			// Inject into context for downstream handlers.
			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VerifiedLookup reports whether the given user's email address is verified.
type VerifiedLookup func(ctx context.Context, userID string) (bool, error)

// RequireVerifiedEmail rejects authenticated requests whose user has not yet
// verified their email address. The 403 verification_required condition is
// distinguishable from 401 so clients can route to a resend-verification flow.
// Must run after AuthnMiddleware.
func RequireVerifiedEmail(lookup VerifiedLookup) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID := UserIDFromContext(ctx)
			if userID == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			verified, err := lookup(ctx, userID)
			if err != nil {
				log.Error("email verification lookup failed", "err", err, "user_id", userID)
				WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"code":    "server_error",
					"message": "internal server error",
				})
				return
			}

			if !verified {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"code":    "verification_required",
					"message": "email address has not been verified",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"code":    "authentication_error",
		"message": "the access token is missing, invalid or expired",
	})
}
