package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants. These provide sensible security defaults but can
// be overridden per-service via configuration.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	// Short-lived for security - typical range is 15m to 1h.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	// Longer-lived for user convenience - typical range is 7d to 30d.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims are the token claims used across the service. Access tokens carry the
// user's email alongside the registered claims; refresh tokens carry only the
// subject and a jti, since their authority is reinforced by the stored hash.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user. Only set on access tokens.
	Email string `json:"email,omitempty"`
}

// NewAccessClaims builds minimally-correct access token claims.
func NewAccessClaims(subject, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email: email,
	}
}

// NewRefreshClaims builds refresh token claims. These are deliberately minimal,
// no email or profile data rides along on a long-lived credential.
func NewRefreshClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim. There
// might be a better way of doing this, but I'm being lazy and using random.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
