package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum accepted HMAC secret length in bytes.
// Anything shorter than the hash output size weakens HMAC-SHA256.
const MinSecretLength = 32

var (
	// ErrInvalidToken is the single condition surfaced to API consumers for any
	// verification failure. The more specific sentinels below are wrapped by it
	// so internal logs can still distinguish the cause.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Signer is our interface for anything that can sign tokens.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a single symmetric secret. The service
// runs two instances, one for access tokens and one for refresh tokens, each
// with a distinct secret so a token from one namespace can never validate in
// the other.
type HS256 struct {
	secret []byte
}

// NewHS256 creates an HMAC-SHA256 signer/verifier from the given secret.
func NewHS256(secret []byte) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("jwtx: secret must be at least %d bytes, got %d", MinSecretLength, len(secret))
	}
	return &HS256{secret: secret}, nil
}

// Sign produces a compact header.payload.signature token.
func (h *HS256) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(h.secret)
}

// Verify parses and validates a compact token. On any failure it returns an
// error wrapping ErrInvalidToken; the wrapped cause (expired, bad signature,
// malformed) is for internal logging only and must not be leaked to clients.
func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, wrapVerifyError(err)
	}
	return claims, nil
}

func wrapVerifyError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrInvalidToken, ErrExpired)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %w", ErrInvalidToken, ErrNotYetValid)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrInvalidToken, ErrInvalidSig)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrInvalidToken, ErrMalformed)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
}
