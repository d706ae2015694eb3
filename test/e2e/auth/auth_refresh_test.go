package auth_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentsift/talentsift/pkg/authsdk"
)

// refreshCookie reads the refresh token cookie currently held in the client's
// jar, or fails the test if none is present.
func refreshCookie(t *testing.T, env *testEnv) *http.Cookie {
	t.Helper()
	u, err := url.Parse(env.Client.BaseURL + "/v1/auth/refresh")
	require.NoError(t, err)
	for _, c := range env.Client.HTTPClient.Jar.Cookies(u) {
		if c.Name == "refresh_token" {
			return c
		}
	}
	t.Fatal("no refresh_token cookie in jar")
	return nil
}

func setRefreshCookie(t *testing.T, env *testEnv, c *http.Cookie) {
	t.Helper()
	u, err := url.Parse(env.Client.BaseURL + "/v1/auth/")
	require.NoError(t, err)
	env.Client.HTTPClient.Jar.SetCookies(u, []*http.Cookie{{
		Name:  c.Name,
		Value: c.Value,
		Path:  "/v1/auth",
	}})
}

func TestRefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	registerAndVerify(t, env, "frank@example.com")
	first := refreshCookie(t, env)

	auth, err := env.Client.Refresh(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, auth.AccessToken)

	second := refreshCookie(t, env)
	require.NotEqual(t, first.Value, second.Value, "refresh rotates the cookie")

	// The rotated cookie keeps working.
	_, err = env.Client.Refresh(ctx)
	require.NoError(t, err)
}

func TestRefreshRejectsStaleCookie(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	registerAndVerify(t, env, "grace@example.com")
	stale := refreshCookie(t, env)

	_, err := env.Client.Refresh(ctx)
	require.NoError(t, err)

	// Replay the pre-rotation cookie.
	setRefreshCookie(t, env, stale)
	_, err = env.Client.Refresh(ctx)
	requireAPIError(t, err, authsdk.ErrorCodeAuthentication)
}

func TestRefreshWithoutCookie(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	_, err := env.Client.Refresh(ctx)
	requireAPIError(t, err, authsdk.ErrorCodeAuthentication)
}

func TestLogoutRevokesRefresh(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	registerAndVerify(t, env, "heidi@example.com")
	session := refreshCookie(t, env)

	require.NoError(t, env.Client.Logout(ctx))

	// Logout both clears the cookie and revokes it server side.
	setRefreshCookie(t, env, session)
	_, err := env.Client.Refresh(ctx)
	requireAPIError(t, err, authsdk.ErrorCodeAuthentication)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	// No session at all.
	require.NoError(t, env.Client.Logout(ctx))

	registerAndVerify(t, env, "ivan@example.com")
	require.NoError(t, env.Client.Logout(ctx))
	require.NoError(t, env.Client.Logout(ctx))
}

func TestPasswordResetRevokesExistingSession(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	registerAndVerify(t, env, "judy@example.com")
	old := refreshCookie(t, env)

	require.NoError(t, env.Client.ForgotPassword(ctx, "judy@example.com"))
	_, err := env.Client.ResetPassword(ctx, authsdk.ResetPasswordRequest{
		Token:           lastEmailToken(t, env.Sender),
		Password:        "replacement-password-1",
		ConfirmPassword: "replacement-password-1",
	})
	require.NoError(t, err)

	// The pre-reset refresh token is no longer honored.
	setRefreshCookie(t, env, old)
	_, err = env.Client.Refresh(ctx)
	requireAPIError(t, err, authsdk.ErrorCodeAuthentication)
}
