package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.CORSOrigin != "*" {
		t.Fatalf("CORSOrigin = %q, want %q", cfg.CORSOrigin, "*")
	}
	if !cfg.SeedSamplePosts {
		t.Fatal("SeedSamplePosts = false, want true")
	}
	if cfg.CreateRateBurst != 5 {
		t.Fatalf("CreateRateBurst = %d, want 5", cfg.CreateRateBurst)
	}
	if cfg.SessionCookie != "postpilot_session" {
		t.Fatalf("SessionCookie = %q, want %q", cfg.SessionCookie, "postpilot_session")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_SAMPLE_POSTS", "false")
	t.Setenv("SESSION_IDLE_TIMEOUT", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.SeedSamplePosts {
		t.Fatal("SeedSamplePosts = true, want false")
	}
	if cfg.SessionIdleTimeout != 30*time.Minute {
		t.Fatalf("SessionIdleTimeout = %v, want 30m", cfg.SessionIdleTimeout)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("CREATE_RATE_BURST", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "load config:") {
		t.Fatalf("expected load config prefix, got %v", err)
	}
}

func TestLoadRejectsZeroBurst(t *testing.T) {
	t.Setenv("CREATE_RATE_BURST", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero burst")
	}
}
