package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("ADMIN_POLL_INTERVAL", "")
	t.Setenv("HTTP_TIMEOUT", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 30*time.Second, cfg.AdminPollInterval)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout, "no client-side deadline unless asked for")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend:9000")
	t.Setenv("APP_PORT", "3000")
	t.Setenv("ADMIN_POLL_INTERVAL", "5s")
	t.Setenv("HTTP_TIMEOUT", "10s")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.APIBaseURL)
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, 5*time.Second, cfg.AdminPollInterval)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoad_BadPollIntervalRejected(t *testing.T) {
	t.Setenv("ADMIN_POLL_INTERVAL", "soon")
	t.Setenv("HTTP_TIMEOUT", "")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_BadTimeoutRejected(t *testing.T) {
	t.Setenv("ADMIN_POLL_INTERVAL", "")
	t.Setenv("HTTP_TIMEOUT", "whenever")

	_, err := Load()

	assert.Error(t, err)

	t.Setenv("HTTP_TIMEOUT", "-5s")
	_, err = Load()
	assert.Error(t, err)
}
