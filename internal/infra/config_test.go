package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FAL_KEY", "")
	t.Setenv("FAL_ENDPOINT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.FalEndpoint != "https://fal.run/fal-ai/nano-banana/edit" {
		t.Fatalf("FalEndpoint = %q", cfg.FalEndpoint)
	}
	if cfg.HasFalKey() {
		t.Fatalf("HasFalKey should be false without FAL_KEY")
	}
	if cfg.MaxBodyBytes != 20<<20 {
		t.Fatalf("MaxBodyBytes = %d", cfg.MaxBodyBytes)
	}
	if cfg.UpstreamTimeout != 0 {
		t.Fatalf("UpstreamTimeout = %v, want 0 (platform default)", cfg.UpstreamTimeout)
	}
}

func TestLoadConfigMissingFalKeyIsNotFatal(t *testing.T) {
	t.Setenv("FAL_KEY", "")

	if _, err := LoadConfig(); err != nil {
		t.Fatalf("startup must tolerate a missing FAL_KEY, got %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("FAL_KEY", "secret")
	t.Setenv("FAL_ENDPOINT", "http://127.0.0.1:9999/edit")
	t.Setenv("HTTP_WRITE_TIMEOUT_SECONDS", "30")
	t.Setenv("MAX_BODY_BYTES", "1024")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "4000" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if !cfg.HasFalKey() {
		t.Fatalf("HasFalKey should be true")
	}
	if cfg.FalEndpoint != "http://127.0.0.1:9999/edit" {
		t.Fatalf("FalEndpoint = %q", cfg.FalEndpoint)
	}
	if cfg.HTTPWriteTimeout != 30*time.Second {
		t.Fatalf("HTTPWriteTimeout = %v", cfg.HTTPWriteTimeout)
	}
	if cfg.MaxBodyBytes != 1024 {
		t.Fatalf("MaxBodyBytes = %d", cfg.MaxBodyBytes)
	}
}

func TestLoadConfigRejectsBadEndpoint(t *testing.T) {
	t.Setenv("FAL_ENDPOINT", "not a url")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for invalid FAL_ENDPOINT")
	}
}
