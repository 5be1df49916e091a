package round

import (
	"baccarat_ledger/internal/model"

	"github.com/shopspring/decimal"
)

// ComputeStatistics Статистика по всему журналу, считается заново при каждом вызове
func ComputeStatistics(rounds []model.Round) model.Statistics {
	stats := model.Statistics{
		Total: len(rounds),
		OutcomeCounts: map[model.Outcome]int{
			model.OutcomePlayer: 0,
			model.OutcomeBanker: 0,
			model.OutcomeTie:    0,
		},
		SideWinRate: map[model.Side]float64{
			model.SidePlayer: 0,
			model.SideBanker: 0,
		},
		CumulativeProfit: decimal.Zero,
	}

	for _, r := range rounds {
		stats.OutcomeCounts[r.Outcome]++
		switch r.Settlement {
		case model.SettlementWin:
			stats.BetWins++
		case model.SettlementLose:
			stats.BetLosses++
		case model.SettlementPush:
			stats.BetPushes++
		}
		stats.CumulativeProfit = stats.CumulativeProfit.Add(r.Profit)
	}

	stats.Decided = stats.OutcomeCounts[model.OutcomePlayer] + stats.OutcomeCounts[model.OutcomeBanker]
	if stats.Decided > 0 {
		stats.SideWinRate[model.SidePlayer] = float64(stats.OutcomeCounts[model.OutcomePlayer]) / float64(stats.Decided)
		stats.SideWinRate[model.SideBanker] = float64(stats.OutcomeCounts[model.OutcomeBanker]) / float64(stats.Decided)
	}
	stats.BetWinRate = betWinRate(stats.BetWins, stats.BetLosses)

	return stats
}

// Window Последние n раундов в исходном порядке
func Window(rounds []model.Round, n int) []model.Round {
	if n <= 0 {
		return []model.Round{}
	}
	if n > len(rounds) {
		n = len(rounds)
	}
	out := make([]model.Round, n)
	copy(out, rounds[len(rounds)-n:])
	return out
}

// ComputeCheckpoint Отчет по последним size раундам.
// Due выставляется только когда длина журнала кратна size
func ComputeCheckpoint(rounds []model.Round, size int) model.Checkpoint {
	window := Window(rounds, size)
	cp := model.Checkpoint{
		Due:        size > 0 && len(rounds) > 0 && len(rounds)%size == 0,
		LedgerSize: len(rounds),
		WindowSize: size,
		Rounds:     len(window),
		Profit:     decimal.Zero,
	}

	for _, r := range window {
		switch r.Settlement {
		case model.SettlementWin:
			cp.BetWins++
		case model.SettlementLose:
			cp.BetLosses++
		}
		cp.Profit = cp.Profit.Add(r.Profit)
	}
	cp.BetWinRate = betWinRate(cp.BetWins, cp.BetLosses)

	return cp
}

func betWinRate(wins, losses int) float64 {
	if wins+losses == 0 {
		return 0
	}
	return float64(wins) / float64(wins+losses)
}
