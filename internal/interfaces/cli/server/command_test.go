package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/orris-inc/fibgate/internal/infrastructure/config"
	sharedConfig "github.com/orris-inc/fibgate/internal/shared/config"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := map[string]string{
		"production":  gin.ReleaseMode,
		"prod":        gin.ReleaseMode,
		"release":     gin.ReleaseMode,
		"test":        gin.TestMode,
		"testing":     gin.TestMode,
		"development": gin.DebugMode,
		"dev":         gin.DebugMode,
		"":            gin.DebugMode,
	}

	for env, want := range tests {
		assert.Equal(t, want, MapEnvToGinMode(env), "env=%q", env)
	}
}

func TestGinModeFor_LeavesConfigUnchanged(t *testing.T) {
	cfg := &config.Config{Server: sharedConfig.ServerConfig{Mode: "production"}}

	assert.Equal(t, gin.ReleaseMode, ginModeFor(cfg))
	assert.Equal(t, "production", cfg.Server.Mode)
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()

	assert.Equal(t, "server", cmd.Use)
	flag := cmd.Flags().Lookup("env")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "development", flag.DefValue)
		assert.Equal(t, "e", flag.Shorthand)
	}
}
