package round

import (
	"baccarat_ledger/internal/config"
	"baccarat_ledger/internal/config/env"
	"baccarat_ledger/internal/model"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// history строит журнал из исходов, ставка всегда 10 на Player
func history(outcomes ...model.Outcome) []model.Round {
	rounds := make([]model.Round, len(outcomes))
	stake := decimal.NewFromInt(10)
	for i, o := range outcomes {
		settlement := DetermineSettlement(model.SidePlayer, o)
		rounds[i] = model.Round{
			Seq:        i + 1,
			Outcome:    o,
			BetSide:    model.SidePlayer,
			Stake:      stake,
			Settlement: settlement,
			Profit:     ComputePayout(settlement, model.SidePlayer, stake),
		}
	}
	return rounds
}

// repeat n раз один и тот же исход
func repeat(o model.Outcome, n int) []model.Outcome {
	out := make([]model.Outcome, n)
	for i := range out {
		out[i] = o
	}
	return out
}

func concat(parts ...[]model.Outcome) []model.Outcome {
	var out []model.Outcome
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func defaultCfg() config.EngineConfig {
	return env.NewDefaultEngineConfig()
}

// yamlCfg конфиг движка из временного YAML файла
func yamlCfg(t *testing.T, body string) config.EngineConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := env.NewEngineConfigFromYAML(path)
	if err != nil {
		t.Fatalf("engine config: %v", err)
	}
	return cfg
}

const (
	P = model.OutcomePlayer
	B = model.OutcomeBanker
	T = model.OutcomeTie
)
