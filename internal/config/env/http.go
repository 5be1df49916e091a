package env

import (
	"baccarat_ledger/internal/config"
	"fmt"
	"net"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Host    string   `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port    string   `env:"HTTP_PORT" envDefault:"8080"`
	Origins []string `env:"HTTP_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse http env: %w", err)
	}
	if len(cfg.Port) == 0 {
		return nil, fmt.Errorf("http port not found")
	}

	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

func (cfg *httpConfig) AllowedOrigins() []string {
	return cfg.Origins
}
