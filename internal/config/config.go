package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultAPIBaseURL   = "http://localhost:5000"
	defaultAppPort      = "8080"
	defaultPollInterval = "30s"
	defaultHTTPTimeout  = "0"
)

// Config holds all runtime configuration. Every field maps to one
// environment variable; unset variables fall back to the defaults above.
type Config struct {
	APIBaseURL        string        // base URL of the remote gateway
	AppPort           string        // port the local UI listens on
	AdminPollInterval time.Duration // how often the admin console re-fetches orders
	HTTPTimeout       time.Duration // per-request gateway timeout, zero means none
}

func Load() (*Config, error) {
	cfg := &Config{
		APIBaseURL: getEnv("API_BASE_URL", defaultAPIBaseURL),
		AppPort:    getEnv("APP_PORT", defaultAppPort),
	}

	interval, err := time.ParseDuration(getEnv("ADMIN_POLL_INTERVAL", defaultPollInterval))
	if err != nil {
		return nil, fmt.Errorf("parse ADMIN_POLL_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("ADMIN_POLL_INTERVAL must be positive, got %s", interval)
	}
	cfg.AdminPollInterval = interval

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", defaultHTTPTimeout))
	if err != nil {
		return nil, fmt.Errorf("parse HTTP_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must not be negative, got %s", timeout)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
