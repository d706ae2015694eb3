package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/talentsift/talentsift/pkg/cryptox"
	"github.com/talentsift/talentsift/pkg/jwtx"
)

// The equalization hash must be minted lazily so importing this package never
// touches the pepper before the process has configured it. A hash minted at
// package init would have used the default pepper path, not the one TestMain
// set, and verification here would fail.
func TestComparisonHashUsesConfiguredPepper(t *testing.T) {
	h := comparisonHash()
	require.NoError(t, cryptox.VerifyPassword("timing-equalization-only", h))
	require.Equal(t, h, comparisonHash())
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	tokens := newTestTokenService(t, st)

	userID := registerVerified(t, accounts, sender, "alice@example.com", "hunter2hunter2")

	pair, user, err := tokens.Login(ctx, "Alice@Example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// The stored fingerprint matches the freshly issued refresh token.
	fresh, err := st.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, fresh.RefreshTokenHash)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	tokens := newTestTokenService(t, st)

	registerVerified(t, accounts, sender, "bob@example.com", "hunter2hunter2")

	_, _, err := tokens.Login(ctx, "bob@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens := newTestTokenService(t, st)

	// Unknown accounts produce the same error as a bad password.
	_, _, err := tokens.Login(ctx, "nobody@example.com", "whatever-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRequiresVerifiedEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, _ := newTestAccountService(t, st)
	tokens := newTestTokenService(t, st)

	_, err := accounts.Register(ctx, "carol@example.com", "hunter2hunter2", "Carol", "")
	require.NoError(t, err)

	_, _, err = tokens.Login(ctx, "carol@example.com", "hunter2hunter2")
	require.ErrorIs(t, err, ErrEmailNotVerified)

	// With the requirement disabled the same login succeeds.
	tokens.RequireVerifiedEmail = false
	_, _, err = tokens.Login(ctx, "carol@example.com", "hunter2hunter2")
	require.NoError(t, err)
}

func TestRefreshRotatesAndInvalidatesOldToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	tokens := newTestTokenService(t, st)

	registerVerified(t, accounts, sender, "dave@example.com", "hunter2hunter2")

	pair, _, err := tokens.Login(ctx, "dave@example.com", "hunter2hunter2")
	require.NoError(t, err)

	rotated, user, err := tokens.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, "dave@example.com", user.Email)
	require.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The displaced token is dead.
	_, _, err = tokens.RefreshTokens(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)

	// The rotated one still works.
	_, _, err = tokens.RefreshTokens(ctx, rotated.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens := newTestTokenService(t, st)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, _, err := tokens.RefreshTokens(ctx, tok)
		require.ErrorIs(t, err, ErrInvalidRefresh)
	}
}

func TestRefreshRejectsForgedSignature(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	tokens := newTestTokenService(t, st)

	registerVerified(t, accounts, sender, "erin@example.com", "hunter2hunter2")
	_, user, err := tokens.Login(ctx, "erin@example.com", "hunter2hunter2")
	require.NoError(t, err)

	// A token signed with the access secret must not pass refresh
	// verification even for a real user.
	forged, err := tokens.Access.Sign(jwtx.NewRefreshClaims(user.ID, tokens.Issuer, tokens.RefreshTTL, time.Now()))
	require.NoError(t, err)

	_, _, err = tokens.RefreshTokens(ctx, forged)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	tokens := newTestTokenService(t, st)

	userID := registerVerified(t, accounts, sender, "frank@example.com", "hunter2hunter2")

	pair, _, err := tokens.Login(ctx, "frank@example.com", "hunter2hunter2")
	require.NoError(t, err)

	require.NoError(t, tokens.Logout(ctx, pair.RefreshToken))

	fresh, err := st.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, fresh.RefreshTokenHash)

	_, _, err = tokens.RefreshTokens(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens := newTestTokenService(t, st)

	require.NoError(t, tokens.Logout(ctx, ""))
	require.NoError(t, tokens.Logout(ctx, "garbage-token"))
}

func TestStaleLogoutDoesNotRevokeNewerSession(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts, sender := newTestAccountService(t, st)
	tokens := newTestTokenService(t, st)

	userID := registerVerified(t, accounts, sender, "grace@example.com", "hunter2hunter2")

	first, _, err := tokens.Login(ctx, "grace@example.com", "hunter2hunter2")
	require.NoError(t, err)

	// A second login displaces the first session.
	second, _, err := tokens.Login(ctx, "grace@example.com", "hunter2hunter2")
	require.NoError(t, err)

	// Logging out with the stale token leaves the live session intact.
	require.NoError(t, tokens.Logout(ctx, first.RefreshToken))

	fresh, err := st.Users().GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, fresh.RefreshTokenHash)

	_, _, err = tokens.RefreshTokens(ctx, second.RefreshToken)
	require.NoError(t, err)
}
