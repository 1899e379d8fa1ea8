package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "3001" {
		t.Fatalf("expected default port 3001, got %q", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Fatalf("expected default env development, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", EnvProduction)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Fatalf("expected env override, got %q", cfg.Env)
	}
}
