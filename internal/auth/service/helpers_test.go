package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/talentsift/talentsift/internal/auth/mailer"
	"github.com/talentsift/talentsift/internal/auth/store"
	"github.com/talentsift/talentsift/internal/auth/store/drivers/sqlite"
	"github.com/talentsift/talentsift/pkg/cryptox"
	"github.com/talentsift/talentsift/pkg/jwtx"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestAccountService(t *testing.T, st store.Store) (*AccountService, *mailer.MemorySender) {
	t.Helper()

	sender := mailer.NewMemorySender()
	return &AccountService{
		Store:  st,
		Mailer: mailer.New(sender, "http://app.test"),
	}, sender
}

func newTestTokenService(t *testing.T, st store.Store) *TokenService {
	t.Helper()

	access, err := jwtx.NewHS256([]byte("access-secret-access-secret-1234"))
	require.NoError(t, err)
	refresh, err := jwtx.NewHS256([]byte("refresh-secret-refresh-secret-12"))
	require.NoError(t, err)

	return &TokenService{
		Store:                st,
		Access:               access,
		Refresh:              refresh,
		Verifier:             refresh,
		Issuer:               "test-issuer",
		AccessTTL:            15 * time.Minute,
		RefreshTTL:           7 * 24 * time.Hour,
		RequireVerifiedEmail: true,
	}
}

// registerVerified creates a user and walks it through email verification.
func registerVerified(t *testing.T, accounts *AccountService, sender *mailer.MemorySender, email, password string) string {
	t.Helper()
	ctx := context.Background()

	user, err := accounts.Register(ctx, email, password, "Test User", "Acme")
	require.NoError(t, err)

	last, ok := sender.Last()
	require.True(t, ok, "verification email should have been sent")
	token := extractToken(t, last.Body)

	verified, err := accounts.VerifyEmail(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, verified.ID)
	require.True(t, verified.EmailVerified)

	return user.ID
}

// extractToken pulls the token query parameter out of an emailed link.
func extractToken(t *testing.T, body string) string {
	t.Helper()

	const marker = "token="
	i := strings.Index(body, marker)
	require.NotEqual(t, -1, i, "email body should contain a token link")

	token := body[i+len(marker):]
	if j := strings.IndexAny(token, "\n \t"); j != -1 {
		token = token[:j]
	}
	require.NotEmpty(t, token)
	return token
}
