package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/talentsift/talentsift/pkg/httpx"
)

// Stable machine-readable error codes returned by the service.
const (
	ErrorCodeValidation           = "validation_error"
	ErrorCodeAuthentication       = "authentication_error"
	ErrorCodeVerificationRequired = "verification_required"
	ErrorCodeNotFound             = "not_found"
	ErrorCodeConflict             = "conflict"
	ErrorCodeRateLimited          = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError represents an error response from the service. It implements the
// error interface and is used both by the server (to write HTTP responses) and
// by the SDK client (to represent errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the stable machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description of the error
	Message string `json:"message"`

	// Details carries field-level validation violations (field name: message).
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// WithDetails returns a copy of the error carrying field-level details.
func (e *APIError) WithDetails(details map[string]string) *APIError {
	return &APIError{
		StatusCode: e.StatusCode,
		Code:       e.Code,
		Message:    e.Message,
		Details:    details,
	}
}

// WithMessage returns a copy of the error with a different human-readable message.
func (e *APIError) WithMessage(msg string) *APIError {
	return &APIError{
		StatusCode: e.StatusCode,
		Code:       e.Code,
		Message:    msg,
	}
}

var (
	// ErrValidation is returned when the request body is malformed or fails
	// field validation. Details lists every violation, not just the first.
	ErrValidation = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    "the request is malformed or missing required fields",
	}

	// ErrAuthentication is returned for bad credentials and for missing,
	// invalid or expired tokens. The distinction is never exposed to clients.
	ErrAuthentication = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAuthentication,
		Message:    "invalid credentials or token",
	}

	// ErrVerificationRequired is returned when the account exists and the
	// credentials are valid but the email address has not been verified.
	ErrVerificationRequired = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeVerificationRequired,
		Message:    "email address has not been verified",
	}

	// ErrNotFound is returned when the referenced resource does not exist.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}

	// ErrConflict is returned when the request conflicts with existing state,
	// e.g. registering an already-registered email address.
	ErrConflict = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeConflict,
		Message:    "the request conflicts with existing state",
	}

	// ErrRateLimited is returned when a usage ceiling or request rate limit
	// has been exceeded.
	ErrRateLimited = &APIError{
		StatusCode: http.StatusTooManyRequests,
		Code:       ErrorCodeRateLimited,
		Message:    "limit exceeded",
	}

	// ErrServer is returned for unexpected failures. The underlying cause is
	// logged server-side and never included in the response.
	ErrServer = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// parseErrorResponse attempts to parse an HTTP error response into an APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
