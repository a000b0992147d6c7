package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081", cfg.Backend.GetBaseURL())
	assert.Equal(t, time.Duration(0), cfg.Backend.GetTimeout())
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "skylink_session", cfg.Session.Cookie.Name)
	assert.Equal(t, 5, cfg.Analytics.RecentLimit)
	assert.Equal(t, "@every 30s", cfg.Analytics.RefreshSchedule)
	assert.Equal(t, 20, cfg.RateLimit.AuthPerMinute)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SKYLINK_BACKEND_BASE_URL", "http://backend.internal:9000/")
	t.Setenv("SKYLINK_BACKEND_TIMEOUT_SECONDS", "12")
	t.Setenv("SKYLINK_SESSION_STORE", "redis")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, "http://backend.internal:9000", cfg.Backend.GetBaseURL())
	assert.Equal(t, 12*time.Second, cfg.Backend.GetTimeout())
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, "release", cfg.Server.Mode)
}
