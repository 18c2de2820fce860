package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestMustLoadByPath(t *testing.T) {
	path := writeConfig(t, `
env: test
trip_cache_ttl: 90s
grpc:
  host: 127.0.0.1
  port: 50051
db:
  host: db
  port: 5432
  user: scheduler
  password: "p@ss"
  name: trips
  sslmode: disable
timezone:
  default: Europe/Berlin
`)
	t.Setenv("REDIS_ADDR", "cache:6380")

	cfg := MustLoadByPath(path)
	if cfg.Env != "test" || cfg.GRPC.Port != 50051 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.TripCacheTTL != 90*time.Second {
		t.Fatalf("expected 90s ttl, got %v", cfg.TripCacheTTL)
	}
	if cfg.GRPC.Timeout != 5*time.Second {
		t.Fatalf("expected default grpc timeout, got %v", cfg.GRPC.Timeout)
	}
	if cfg.Redis.Addr != "cache:6380" {
		t.Fatalf("expected env override for redis addr, got %q", cfg.Redis.Addr)
	}
	if cfg.Timezone.Default != "Europe/Berlin" {
		t.Fatalf("unexpected default zone %q", cfg.Timezone.Default)
	}
	if got := cfg.DB.DatabaseURL(); got != "postgres://scheduler:p%40ss@db:5432/trips?sslmode=disable" {
		t.Fatalf("unexpected database url %q", got)
	}
}

func TestDatabaseURLPrefersDSN(t *testing.T) {
	cfg := DBConfig{DSN: "postgres://u:p@h:1/x", Host: "ignored"}
	if got := cfg.DatabaseURL(); got != cfg.DSN {
		t.Fatalf("expected dsn, got %q", got)
	}
}

func TestMustLoadByPathMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing config")
		}
	}()
	MustLoadByPath(filepath.Join(t.TempDir(), "nope.yaml"))
}
