package env

import (
	"baccarat_ledger/internal/config"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type loggerConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Dev      bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	var cfg loggerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse logger env: %w", err)
	}
	return &cfg, nil
}

func (cfg *loggerConfig) Level() string {
	return cfg.LogLevel
}

func (cfg *loggerConfig) Development() bool {
	return cfg.Dev
}
