package authsdk

import "time"

// UserSummary is the public shape of a user record. Token hashes, password
// hashes and pending token fields are never serialized.
type UserSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Organization  string    `json:"organization,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// RegisterRequest is the payload for POST /v1/auth/register.
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Organization string `json:"organization,omitempty"`
}

// RegisterResponse confirms registration; verification is pending until the
// emailed token is consumed.
type RegisterResponse struct {
	User    UserSummary `json:"user"`
	Message string      `json:"message"`
}

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a freshly minted access token. The refresh token is
// delivered separately as an http-only cookie and never appears in the body.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"` // always "Bearer"
	ExpiresIn   int         `json:"expires_in"` // seconds until access token expiry
	User        UserSummary `json:"user"`
}

// VerifyEmailRequest is the payload for POST /v1/auth/verify-email.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// EmailRequest is the payload for the resend-verification and forgot-password
// endpoints. Both are enumeration-safe and always answer with a GenericResponse.
type EmailRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the payload for POST /v1/auth/reset-password.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// GenericResponse is a deliberately uninformative success response used by
// enumeration-safe endpoints.
type GenericResponse struct {
	Message string `json:"message"`
}

// UsageResponse is the snapshot returned by GET /v1/usage and after a
// successful increment.
type UsageResponse struct {
	Counters  map[string]int64 `json:"counters"`
	Limits    map[string]int64 `json:"limits"`
	Remaining map[string]int64 `json:"remaining"`
}

// IncrementRequest is the payload for POST /v1/usage/increment.
type IncrementRequest struct {
	Email   string `json:"email"`
	Counter string `json:"counter"`
	Amount  int64  `json:"amount,omitempty"` // defaults to 1
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
