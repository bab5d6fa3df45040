package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  port: "9090"
  messages_per_second: 5
  burst: 10
redis:
  addr: localhost:6379
  ttl: 5m
quiz:
  default_id: aoop-basics
session:
  idle_ttl: 30m
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Server.MessagesPerSecond != 5 || cfg.Server.Burst != 10 {
		t.Fatalf("unexpected server section %+v", cfg.Server)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Quiz.DefaultID != "aoop-basics" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := TTLDuration(cfg.Session.IdleTTL, time.Minute); got != 30*time.Minute {
		t.Fatalf("expected 30m idle ttl, got %v", got)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, found, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil || found {
		t.Fatalf("expected silent fallback, got found=%v err=%v", found, err)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestTTLDurationFallback(t *testing.T) {
	if got := TTLDuration("", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for empty, got %v", got)
	}
	if got := TTLDuration("soon", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for garbage, got %v", got)
	}
}
