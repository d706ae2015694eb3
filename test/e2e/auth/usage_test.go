package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentsift/talentsift/pkg/authsdk"
)

func TestUsageStartsAtZero(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	auth := registerAndVerify(t, env, "kim@example.com")

	usage, err := env.Client.Usage(ctx, auth.AccessToken)
	require.NoError(t, err)

	for _, counter := range []string{
		"filesUploaded", "batchAnalysisCount", "compareResumesCount", "selectedCandidateCount",
	} {
		require.Zero(t, usage.Counters[counter])
	}
	require.Equal(t, int64(10), usage.Limits["selectedCandidateCount"])
	require.Equal(t, int64(10), usage.Remaining["selectedCandidateCount"])
	require.NotContains(t, usage.Limits, "filesUploaded")
}

func TestIncrementAdvancesCounters(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	auth := registerAndVerify(t, env, "leo@example.com")

	usage, err := env.Client.Increment(ctx, auth.AccessToken, authsdk.IncrementRequest{
		Email:   "leo@example.com",
		Counter: "filesUploaded",
		Amount:  3,
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), usage.Counters["filesUploaded"])

	// Amount defaults to one.
	usage, err = env.Client.Increment(ctx, auth.AccessToken, authsdk.IncrementRequest{
		Email:   "leo@example.com",
		Counter: "filesUploaded",
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), usage.Counters["filesUploaded"])
	require.Zero(t, usage.Counters["batchAnalysisCount"])
}

func TestIncrementEnforcesCeiling(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	auth := registerAndVerify(t, env, "mallory@example.com")

	req := authsdk.IncrementRequest{
		Email:   "mallory@example.com",
		Counter: "selectedCandidateCount",
	}
	for i := 0; i < 10; i++ {
		_, err := env.Client.Increment(ctx, auth.AccessToken, req)
		require.NoError(t, err)
	}

	_, err := env.Client.Increment(ctx, auth.AccessToken, req)
	requireAPIError(t, err, authsdk.ErrorCodeRateLimited)

	// The refused increment left the counter at the ceiling.
	usage, err := env.Client.Usage(ctx, auth.AccessToken)
	require.NoError(t, err)
	require.Equal(t, int64(10), usage.Counters["selectedCandidateCount"])
	require.Zero(t, usage.Remaining["selectedCandidateCount"])
}

func TestIncrementRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	auth := registerAndVerify(t, env, "nick@example.com")

	_, err := env.Client.Increment(ctx, auth.AccessToken, authsdk.IncrementRequest{
		Email:   "nick@example.com",
		Counter: "notACounter",
	})
	requireAPIError(t, err, authsdk.ErrorCodeValidation)

	_, err = env.Client.Increment(ctx, auth.AccessToken, authsdk.IncrementRequest{
		Email:   "nobody@example.com",
		Counter: "filesUploaded",
	})
	requireAPIError(t, err, authsdk.ErrorCodeNotFound)
}

func TestUsageRequiresAuthentication(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	_, err := env.Client.Usage(ctx, "")
	requireAPIError(t, err, authsdk.ErrorCodeAuthentication)

	_, err = env.Client.Usage(ctx, "not-a-jwt")
	requireAPIError(t, err, authsdk.ErrorCodeAuthentication)

	_, err = env.Client.Increment(ctx, "", authsdk.IncrementRequest{
		Email:   "anyone@example.com",
		Counter: "filesUploaded",
	})
	requireAPIError(t, err, authsdk.ErrorCodeAuthentication)
}

func TestUsageRequiresVerifiedEmail(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	// Mint a valid access token for an account that never verified. Login
	// refuses unverified accounts, so issue the session directly.
	_, err := env.Client.Register(ctx, authsdk.RegisterRequest{
		Name: "Olive", Email: "olive@example.com", Password: testPassword,
	})
	require.NoError(t, err)

	user, err := env.Tokens.Store.Users().GetUserByEmail(ctx, "olive@example.com")
	require.NoError(t, err)

	pair, err := env.Tokens.IssueForUser(ctx, user)
	require.NoError(t, err)

	_, err = env.Client.Usage(ctx, pair.AccessToken)
	requireAPIError(t, err, authsdk.ErrorCodeVerificationRequired)
}
