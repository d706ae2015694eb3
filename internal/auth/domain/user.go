package domain

import (
	"strings"
	"time"
)

// User is the sole persistent entity the auth core depends on. Exactly one
// row exists per normalized email address.
type User struct {
	ID           string
	Email        string // always stored lowercase
	Name         string
	Organization string
	PasswordHash string // argon2 encoded

	// RefreshTokenHash is the SHA-256 fingerprint of the single currently
	// valid refresh token, or nil when the user is logged out. Rotation
	// overwrites it on every refresh.
	RefreshTokenHash *string

	EmailVerified bool

	// Pending single-use token state. Present only while the respective flow
	// is in progress; cleared in the same update that consumes the token.
	VerificationToken     *string
	VerificationExpiresAt *time.Time
	ResetToken            *string
	ResetTokenExpiresAt   *time.Time

	Usage UsageCounters

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail lowercases and trims an email address. Every lookup and
// write keys on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
