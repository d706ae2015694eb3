package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentsift/talentsift/pkg/authsdk"
)

func TestLivez(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	health, err := env.Client.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Uptime)
	require.NotEmpty(t, health.Version)
}

func TestReadyz(t *testing.T) {
	env := setupServer(t)

	resp, err := env.Client.HTTPClient.Get(env.Client.BaseURL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health authsdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
