package env

import (
	"testing"
	"time"
)

func TestSessionConfig(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "s3cret")
	t.Setenv("SESSION_TOKEN_DURATION", "30m")
	t.Setenv("SESSION_COOKIE_SECURE", "true")

	cfg, err := NewSessionConfig()
	if err != nil {
		t.Fatal(err)
	}
	if string(cfg.TokenSecretKey()) != "s3cret" || cfg.TokenDuration() != 30*time.Minute || !cfg.SecureCookie() {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestSessionConfigErrors(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "")
	if _, err := NewSessionConfig(); err == nil {
		t.Fatal("expected error without secret")
	}

	t.Setenv("SESSION_TOKEN_SECRET", "s3cret")
	t.Setenv("SESSION_TOKEN_DURATION", "forever")
	if _, err := NewSessionConfig(); err == nil {
		t.Fatal("expected error for bad duration")
	}

	t.Setenv("SESSION_TOKEN_DURATION", "-1h")
	if _, err := NewSessionConfig(); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Address() != "127.0.0.1:9000" {
		t.Fatalf("address=%s", cfg.Address())
	}
	if origins := cfg.AllowedOrigins(); len(origins) != 2 || origins[1] != "https://b.example" {
		t.Fatalf("origins=%v", origins)
	}
}

func TestLoggerConfigDefaults(t *testing.T) {
	cfg, err := NewLoggerConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level() != "info" || cfg.Development() {
		t.Fatalf("level=%s dev=%v", cfg.Level(), cfg.Development())
	}
}
