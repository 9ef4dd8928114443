package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "API_BASE_URL", "API_TIMEOUT_SECONDS", "ALLOWED_ORIGINS", "RATE_LIMIT_PER_MINUTE", "REFRESH_INTERVAL_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerPort != "8090" {
		t.Errorf("ServerPort = %q, want 8090", cfg.ServerPort)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 0 {
		t.Errorf("APITimeout = %v, want no limit", cfg.APITimeout)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v, want nil (allow all)", cfg.AllowedOrigins)
	}
	if cfg.RefreshInterval != 0 {
		t.Errorf("RefreshInterval = %v, want disabled", cfg.RefreshInterval)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://catalog:9000/api/")
	t.Setenv("API_TIMEOUT_SECONDS", "7")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("REFRESH_INTERVAL_SECONDS", "30")

	cfg := Load()

	if cfg.APIBaseURL != "http://catalog:9000/api" {
		t.Errorf("trailing slash not trimmed: %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 7*time.Second {
		t.Errorf("APITimeout = %v", cfg.APITimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "http://a.test" || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Errorf("invalid int should fall back, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Errorf("RefreshInterval = %v", cfg.RefreshInterval)
	}
}
