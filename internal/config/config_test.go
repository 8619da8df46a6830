package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRANSIT_API_KEY", "secret")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "https://external.transitapp.com/v3/public", cfg.TransitBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("TRANSIT_API_KEY", "secret")
	t.Setenv("TRANSIT_BASE_URL", "https://example.com/v3")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "secret", cfg.TransitAPIKey)
	assert.Equal(t, "https://example.com/v3", cfg.TransitBaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestValidate(t *testing.T) {
	t.Setenv("TRANSIT_API_KEY", "secret")
	require.NoError(t, Load().Validate())
}

func TestValidateMissingAPIKey(t *testing.T) {
	t.Setenv("TRANSIT_API_KEY", "")
	assert.Error(t, Load().Validate())
}

func TestValidateBadBaseURL(t *testing.T) {
	t.Setenv("TRANSIT_API_KEY", "secret")
	t.Setenv("TRANSIT_BASE_URL", "not a url")
	assert.Error(t, Load().Validate())
}
