package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
	CtxKeyClaims ctxKey = "claims" // full jwtx.Claims if a handler needs them
)

// UserIDFromContext returns the authenticated user id, or "" if the request
// did not pass through AuthnMiddleware.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// EmailFromContext returns the authenticated user's email, or "".
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}
