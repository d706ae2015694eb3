package auth_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpapi "github.com/talentsift/talentsift/internal/auth/http"
	"github.com/talentsift/talentsift/internal/auth/mailer"
	"github.com/talentsift/talentsift/internal/auth/service"
	"github.com/talentsift/talentsift/internal/auth/store/drivers/sqlite"
	"github.com/talentsift/talentsift/pkg/authsdk"
	"github.com/talentsift/talentsift/pkg/cryptox"
	"github.com/talentsift/talentsift/pkg/httpx"
	"github.com/talentsift/talentsift/pkg/jwtx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

/*
 * Common helpers for auth service end-to-end tests. Each test boots the full
 * HTTP stack in-process against an in-memory sqlite database and drives it
 * through the authsdk client, so the wire format, cookies, middleware, and
 * rate limiting all run exactly as in production.
 */

const (
	testPassword = "correct-horse-battery"
	testIssuer   = "talentsift-auth-test"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	// Every request in these tests arrives from 127.0.0.1, so the per-IP
	// brute force limits would starve multi-step flows. Raise them; the
	// limiter behavior itself is covered in pkg/httpx.
	httpx.StrictLimit = httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
	httpx.ModerateLimit = httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}

	os.Exit(m.Run())
}

type testEnv struct {
	Client *authsdk.Client
	Sender *mailer.MemorySender
	Tokens *service.TokenService
}

// setupServer boots the full router on an httptest server and returns an SDK
// client pointed at it.
func setupServer(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	access, err := jwtx.NewHS256([]byte("e2e-access-secret-e2e-access-sec"))
	require.NoError(t, err)
	refresh, err := jwtx.NewHS256([]byte("e2e-refresh-secret-e2e-refresh-s"))
	require.NoError(t, err)

	tokens := &service.TokenService{
		Store:                st,
		Access:               access,
		Refresh:              refresh,
		Verifier:             refresh,
		Issuer:               testIssuer,
		AccessTTL:            15 * time.Minute,
		RefreshTTL:           7 * 24 * time.Hour,
		RequireVerifiedEmail: true,
	}

	sender := mailer.NewMemorySender()
	accounts := &service.AccountService{
		Store:  st,
		Mailer: mailer.New(sender, "http://app.test"),
	}

	logger := slogx.New(slogx.Config{Service: "auth-e2e", Env: "test", Level: "error", Format: "text"})

	// The refresh cookie must not be Secure here: httptest serves plain http
	// and the jar would otherwise refuse to replay it.
	router := httpapi.NewRouter(access, "test", false, st, logger)
	router.TokenService = tokens
	router.AccountService = accounts
	router.UsageService = &service.UsageService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		Client: authsdk.NewClient(server.URL),
		Sender: sender,
		Tokens: tokens,
	}
}

// registerAndVerify walks a fresh account through registration and email
// verification, returning the signed-in auth response.
func registerAndVerify(t *testing.T, env *testEnv, email string) *authsdk.AuthResponse {
	t.Helper()
	ctx := context.Background()

	_, err := env.Client.Register(ctx, authsdk.RegisterRequest{
		Name:     "E2E User",
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err)

	auth, err := env.Client.VerifyEmail(ctx, lastEmailToken(t, env.Sender))
	require.NoError(t, err)
	require.NotEmpty(t, auth.AccessToken)
	return auth
}

// lastEmailToken extracts the token link parameter from the most recent email.
func lastEmailToken(t *testing.T, sender *mailer.MemorySender) string {
	t.Helper()

	last, ok := sender.Last()
	require.True(t, ok, "an email should have been sent")

	const marker = "token="
	i := strings.Index(last.Body, marker)
	require.NotEqual(t, -1, i, "email body should contain a token link")

	token := last.Body[i+len(marker):]
	if j := strings.IndexAny(token, "\n \t"); j != -1 {
		token = token[:j]
	}
	require.NotEmpty(t, token)
	return token
}

// requireAPIError asserts err is an APIError with the given code.
func requireAPIError(t *testing.T, err error, code string) {
	t.Helper()

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code)
}
