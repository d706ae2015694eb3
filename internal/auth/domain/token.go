package domain

import "time"

// TokenPair is what a successful authentication returns: the short-lived
// access token for the response body, and the long-lived refresh token that
// the transport layer delivers as an http-only cookie.
type TokenPair struct {
	AccessToken  string
	RefreshToken string // plaintext, returned exactly once; only its hash is persisted
	ExpiresIn    time.Duration
	RefreshTTL   time.Duration
}
