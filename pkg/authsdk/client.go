package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client is a small typed client for the talentsift auth service. It keeps a
// cookie jar so the http-only refresh cookie set by login flows is replayed
// automatically on refresh and logout.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// Register creates a new unverified account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.post(ctx, "/v1/auth/register", req, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for an access token. The refresh token cookie is
// stored in the client's jar.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.post(ctx, "/v1/auth/login", LoginRequest{Email: email, Password: password}, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh trades the stored refresh cookie for a new access token and a
// rotated refresh cookie.
func (c *Client) Refresh(ctx context.Context) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.post(ctx, "/v1/auth/refresh", nil, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the current refresh token. Idempotent.
func (c *Client) Logout(ctx context.Context) error {
	var out GenericResponse
	return c.post(ctx, "/v1/auth/logout", nil, &out, "")
}

// VerifyEmail consumes an emailed verification token.
func (c *Client) VerifyEmail(ctx context.Context, token string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.post(ctx, "/v1/auth/verify-email", VerifyEmailRequest{Token: token}, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendVerification requests a fresh verification email. Enumeration-safe:
// succeeds whether or not the address is registered.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	var out GenericResponse
	return c.post(ctx, "/v1/auth/resend-verification", EmailRequest{Email: email}, &out, "")
}

// ForgotPassword requests a password reset email. Enumeration-safe.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	var out GenericResponse
	return c.post(ctx, "/v1/auth/forgot-password", EmailRequest{Email: email}, &out, "")
}

// ResetPassword consumes an emailed reset token and replaces the password.
// On success the account is signed in with fresh tokens.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.post(ctx, "/v1/auth/reset-password", req, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// Usage fetches the authenticated user's usage counters.
func (c *Client) Usage(ctx context.Context, accessToken string) (*UsageResponse, error) {
	var out UsageResponse
	if err := c.get(ctx, "/v1/usage", &out, accessToken); err != nil {
		return nil, err
	}
	return &out, nil
}

// Increment advances a usage counter for the given account.
func (c *Client) Increment(ctx context.Context, accessToken string, req IncrementRequest) (*UsageResponse, error) {
	var out UsageResponse
	if err := c.post(ctx, "/v1/usage/increment", req, &out, accessToken); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez checks service liveness.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.get(ctx, "/livez", &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any, accessToken string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("authsdk: marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out, accessToken)
}

func (c *Client) get(ctx context.Context, path string, out any, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out, accessToken)
}

func (c *Client) do(req *http.Request, out any, accessToken string) error {
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("authsdk: read response: %w", err)
	}

	if err := parseErrorResponse(resp, data); err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("authsdk: unmarshal response: %w", err)
		}
	}
	return nil
}
