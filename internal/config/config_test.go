package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("SESSION_BACKEND", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.OpenAIModel != "gpt-4.1-mini" {
		t.Fatalf("expected default model, got %s", cfg.OpenAIModel)
	}
	if cfg.HistoryWindow != 16 {
		t.Fatalf("expected default history window, got %d", cfg.HistoryWindow)
	}
	if cfg.SessionBackend != "memory" {
		t.Fatalf("expected memory session backend, got %s", cfg.SessionBackend)
	}
	if cfg.SessionIdleTTL != 24*time.Hour {
		t.Fatalf("expected default idle TTL, got %s", cfg.SessionIdleTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.BrokerPhone != "(514) 894-9400" {
		t.Fatalf("expected default broker phone, got %s", cfg.BrokerPhone)
	}
	if cfg.BrokerEmail != "mario@marioconte.com" {
		t.Fatalf("expected default broker email, got %s", cfg.BrokerEmail)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("HISTORY_WINDOW", "8")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("SESSION_IDLE_TTL", "45m")
	t.Setenv("SESSION_MAX_COUNT", "200")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://marioconte.com, https://www.marioconte.com")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("expected model override, got %s", cfg.OpenAIModel)
	}
	if cfg.HistoryWindow != 8 {
		t.Fatalf("expected history window override, got %d", cfg.HistoryWindow)
	}
	if cfg.SessionBackend != "redis" {
		t.Fatalf("expected normalized redis backend, got %s", cfg.SessionBackend)
	}
	if cfg.SessionIdleTTL != 45*time.Minute {
		t.Fatalf("expected idle TTL override, got %s", cfg.SessionIdleTTL)
	}
	if cfg.SessionMaxCount != 200 {
		t.Fatalf("expected session cap override, got %d", cfg.SessionMaxCount)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.marioconte.com" {
		t.Fatalf("expected CORS list override, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
}
