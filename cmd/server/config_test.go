package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Address != ":8080" {
		t.Errorf("expected default address :8080, got %q", cfg.Server.Address)
	}
	if cfg.Server.DBPath != "peoplemover.db" {
		t.Errorf("expected default db path peoplemover.db, got %q", cfg.Server.DBPath)
	}
	if cfg.TokenLifetimeDuration() != 24*time.Hour {
		t.Errorf("expected default token lifetime 24h, got %v", cfg.Auth.TokenLifetime)
	}
	if cfg.ReadTimeoutDuration() != 15*time.Second {
		t.Errorf("expected default read timeout 15s, got %v", cfg.Server.ReadTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadConfig_AppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  db_path: /tmp/test.db
  allowed_origins:
    - https://peoplemover.example.com
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("expected defaulted address :8080, got %q", cfg.Server.Address)
	}
	if cfg.Server.DBPath != "/tmp/test.db" {
		t.Errorf("expected db path from file, got %q", cfg.Server.DBPath)
	}
	if len(cfg.Server.AllowedOrigins) != 1 {
		t.Errorf("expected one allowed origin, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestConfigValidate_RejectsShortAuthSecret(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Auth.Secret = "short"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for short auth secret")
	}
}

func TestConfigValidate_RejectsInvalidDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.ReadTimeout = "not-a-duration"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for invalid server.read_timeout")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
