package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "client_credentials", cfg.FIB.GrantType)
	assert.Equal(t, "stage", cfg.FIB.ResolvedEnvironment())
	assert.Equal(t, 30*time.Second, cfg.FIB.RequestTimeout)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_LegacyEnvironmentVariables(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CLIENT_ID", "legacy-id")
	t.Setenv("CLIENT_SECRET", "legacy-secret")
	t.Setenv("FIB_GATEWAY_ENVIRONMENT", "PROD")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "legacy-id", cfg.FIB.ClientID)
	assert.Equal(t, "legacy-secret", cfg.FIB.ClientSecret)
	assert.Equal(t, "https://fib.prod.fib.iq", cfg.FIB.GetBaseURL())
}

func TestLoad_PrefixedVariablesWin(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CLIENT_ID", "legacy-id")
	t.Setenv("FIBGATE_FIB_CLIENT_ID", "prefixed-id")
	t.Setenv("FIBGATE_SERVER_PORT", "9090")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, "prefixed-id", cfg.FIB.ClientID)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
}
