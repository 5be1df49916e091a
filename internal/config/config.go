package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	AllowedOrigins() []string
}

type SessionConfig interface {
	TokenSecretKey() []byte
	TokenDuration() time.Duration
	SecureCookie() bool
}

type LoggerConfig interface {
	Level() string
	Development() bool
}

// EngineConfig Константы движка рекомендаций и выплат
type EngineConfig interface {
	ThresholdWindow() int
	ThresholdRate() float64
	CheckpointWindow() int
	BaseStake() decimal.Decimal
	MaxStake() decimal.Decimal
	MaxBet() decimal.Decimal
	StakeFloor() decimal.Decimal
	BankerCommission() decimal.Decimal
	SameSideStreakFactor() decimal.Decimal
	OppositeSideStreakFactor() decimal.Decimal
}
