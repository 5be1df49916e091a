package env

import (
	"baccarat_ledger/internal/config"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	defaultThresholdWindow  = 5
	defaultThresholdRate    = 0.6
	defaultCheckpointWindow = 10
	defaultBaseStake        = 10
	defaultMaxStake         = 100
	defaultMaxBet           = 1_000_000
	defaultStakeFloor       = 10
	defaultBankerCommission = 0.05
	defaultSameSideFactor   = 1.5
	defaultOppositeFactor   = 0.7
)

// engineFile Секция engine в config.yaml. Отсутствующие ключи берутся по умолчанию
type engineFile struct {
	Engine struct {
		ThresholdWindow          *int     `yaml:"threshold_window"`
		ThresholdRate            *float64 `yaml:"threshold_rate"`
		CheckpointWindow         *int     `yaml:"checkpoint_window"`
		BaseStake                *float64 `yaml:"base_stake"`
		MaxStake                 *float64 `yaml:"max_stake"`
		MaxBet                   *float64 `yaml:"max_bet"`
		StakeFloor               *float64 `yaml:"stake_floor"`
		BankerCommission         *float64 `yaml:"banker_commission"`
		SameSideStreakFactor     *float64 `yaml:"same_side_streak_factor"`
		OppositeSideStreakFactor *float64 `yaml:"opposite_side_streak_factor"`
	} `yaml:"engine"`
}

type engineConfig struct {
	thresholdWindow  int
	thresholdRate    float64
	checkpointWindow int
	baseStake        decimal.Decimal
	maxStake         decimal.Decimal
	maxBet           decimal.Decimal
	stakeFloor       decimal.Decimal
	bankerCommission decimal.Decimal
	sameSideFactor   decimal.Decimal
	oppositeFactor   decimal.Decimal
}

// NewDefaultEngineConfig Конфиг движка со значениями по умолчанию
func NewDefaultEngineConfig() config.EngineConfig {
	return &engineConfig{
		thresholdWindow:  defaultThresholdWindow,
		thresholdRate:    defaultThresholdRate,
		checkpointWindow: defaultCheckpointWindow,
		baseStake:        decimal.NewFromInt(defaultBaseStake),
		maxStake:         decimal.NewFromInt(defaultMaxStake),
		maxBet:           decimal.NewFromInt(defaultMaxBet),
		stakeFloor:       decimal.NewFromInt(defaultStakeFloor),
		bankerCommission: decimal.NewFromFloat(defaultBankerCommission),
		sameSideFactor:   decimal.NewFromFloat(defaultSameSideFactor),
		oppositeFactor:   decimal.NewFromFloat(defaultOppositeFactor),
	}
}

// NewEngineConfigFromYAML Читает секцию engine из YAML файла.
// Если файла нет, возвращается конфиг по умолчанию
func NewEngineConfigFromYAML(path string) (config.EngineConfig, error) {
	cfg := NewDefaultEngineConfig().(*engineConfig)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read engine config: %w", err)
	}

	var file engineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse engine config: %w", err)
	}

	e := file.Engine
	if e.ThresholdWindow != nil {
		cfg.thresholdWindow = *e.ThresholdWindow
	}
	if e.ThresholdRate != nil {
		cfg.thresholdRate = *e.ThresholdRate
	}
	if e.CheckpointWindow != nil {
		cfg.checkpointWindow = *e.CheckpointWindow
	}
	if e.BaseStake != nil {
		cfg.baseStake = decimal.NewFromFloat(*e.BaseStake)
	}
	if e.MaxStake != nil {
		cfg.maxStake = decimal.NewFromFloat(*e.MaxStake)
	}
	if e.MaxBet != nil {
		cfg.maxBet = decimal.NewFromFloat(*e.MaxBet)
	}
	if e.StakeFloor != nil {
		cfg.stakeFloor = decimal.NewFromFloat(*e.StakeFloor)
	}
	if e.BankerCommission != nil {
		cfg.bankerCommission = decimal.NewFromFloat(*e.BankerCommission)
	}
	if e.SameSideStreakFactor != nil {
		cfg.sameSideFactor = decimal.NewFromFloat(*e.SameSideStreakFactor)
	}
	if e.OppositeSideStreakFactor != nil {
		cfg.oppositeFactor = decimal.NewFromFloat(*e.OppositeSideStreakFactor)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	return cfg, nil
}

func (cfg *engineConfig) validate() error {
	if cfg.thresholdWindow <= 0 {
		return errors.New("threshold_window must be positive")
	}
	if cfg.thresholdRate <= 0 || cfg.thresholdRate > 1 {
		return errors.New("threshold_rate must be in (0, 1]")
	}
	if cfg.checkpointWindow <= 0 {
		return errors.New("checkpoint_window must be positive")
	}
	if cfg.baseStake.IsNegative() {
		return errors.New("base_stake must not be negative")
	}
	if cfg.maxStake.LessThan(cfg.baseStake) {
		return errors.New("max_stake must not be less than base_stake")
	}
	if !cfg.maxBet.IsPositive() {
		return errors.New("max_bet must be positive")
	}
	if cfg.stakeFloor.IsNegative() {
		return errors.New("stake_floor must not be negative")
	}
	if cfg.bankerCommission.IsNegative() || cfg.bankerCommission.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return errors.New("banker_commission must be in [0, 1)")
	}
	if cfg.sameSideFactor.IsNegative() || cfg.oppositeFactor.IsNegative() {
		return errors.New("streak factors must not be negative")
	}
	return nil
}

func (cfg *engineConfig) ThresholdWindow() int {
	return cfg.thresholdWindow
}

func (cfg *engineConfig) ThresholdRate() float64 {
	return cfg.thresholdRate
}

func (cfg *engineConfig) CheckpointWindow() int {
	return cfg.checkpointWindow
}

func (cfg *engineConfig) BaseStake() decimal.Decimal {
	return cfg.baseStake
}

func (cfg *engineConfig) MaxStake() decimal.Decimal {
	return cfg.maxStake
}

func (cfg *engineConfig) MaxBet() decimal.Decimal {
	return cfg.maxBet
}

func (cfg *engineConfig) StakeFloor() decimal.Decimal {
	return cfg.stakeFloor
}

func (cfg *engineConfig) BankerCommission() decimal.Decimal {
	return cfg.bankerCommission
}

func (cfg *engineConfig) SameSideStreakFactor() decimal.Decimal {
	return cfg.sameSideFactor
}

func (cfg *engineConfig) OppositeSideStreakFactor() decimal.Decimal {
	return cfg.oppositeFactor
}
