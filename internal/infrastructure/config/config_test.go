package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func loadFrom(t *testing.T, env map[string]string) *Config {
	t.Helper()
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	if err != nil {
		t.Fatalf("process config: %v", err)
	}
	return &cfg
}

func TestDefaults(t *testing.T) {
	cfg := loadFrom(t, nil)

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env development, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if !cfg.UsingDevSecret() {
		t.Fatal("unset JWT_SECRET should fall back to the dev signing key")
	}
}

func TestOverrides(t *testing.T) {
	cfg := loadFrom(t, map[string]string{
		"PORT":       "9090",
		"ENV":        "production",
		"JWT_SECRET": "s3cr3t",
		"LOG_LEVEL":  "debug",
	})

	if cfg.Port != "9090" || cfg.Env != "production" || cfg.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.UsingDevSecret() {
		t.Fatal("explicit JWT_SECRET should not count as the dev signing key")
	}
}
