package env

import (
	"baccarat_ledger/internal/config"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type sessionConfig struct {
	SecretKey string        `env:"SESSION_TOKEN_SECRET"`
	Duration  time.Duration `env:"SESSION_TOKEN_DURATION" envDefault:"12h"`
	Secure    bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

func NewSessionConfig() (config.SessionConfig, error) {
	var cfg sessionConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse session env: %w", err)
	}

	if len(cfg.SecretKey) == 0 {
		return nil, fmt.Errorf("session token secret key not found")
	}

	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("invalid session token duration: %s", cfg.Duration)
	}

	return &cfg, nil
}

func (cfg *sessionConfig) TokenSecretKey() []byte {
	return []byte(cfg.SecretKey)
}

func (cfg *sessionConfig) TokenDuration() time.Duration {
	return cfg.Duration
}

func (cfg *sessionConfig) SecureCookie() bool {
	return cfg.Secure
}
