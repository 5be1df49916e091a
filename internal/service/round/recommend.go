package round

import (
	"baccarat_ledger/internal/config"
	"baccarat_ledger/internal/model"
	"fmt"

	"github.com/shopspring/decimal"
)

// Recommend Рекомендация по выбранной политике
func Recommend(policy model.Policy, rounds []model.Round, cfg config.EngineConfig) model.Recommendation {
	if policy == model.PolicyConfidence {
		return RecommendConfidence(rounds, DetectStreak(rounds), cfg)
	}
	return RecommendThreshold(rounds, cfg)
}

// RecommendThreshold Пороговая политика.
// Смотрим на последние N раундов без ничьих. Сторона с долей побед >= порога
// и строго больше другой стороны рекомендуется к ставке
func RecommendThreshold(rounds []model.Round, cfg config.EngineConfig) model.Recommendation {
	window := cfg.ThresholdWindow()
	rec := model.Recommendation{
		Policy: model.PolicyThreshold,
		Stake:  decimal.Zero,
	}

	decided := make([]model.Round, 0, len(rounds))
	for _, r := range rounds {
		if r.Outcome != model.OutcomeTie {
			decided = append(decided, r)
		}
	}

	if len(decided) < window {
		rec.Verdict = model.VerdictInsufficientData
		rec.Rationale = fmt.Sprintf("insufficient data: %d of %d decided rounds", len(decided), window)
		return rec
	}

	var player, banker int
	for _, r := range decided[len(decided)-window:] {
		if r.Outcome == model.OutcomePlayer {
			player++
		} else {
			banker++
		}
	}
	rec.PlayerRate = float64(player) / float64(window)
	rec.BankerRate = float64(banker) / float64(window)

	threshold := cfg.ThresholdRate()
	switch {
	case rec.PlayerRate >= threshold && rec.PlayerRate > rec.BankerRate:
		rec.Verdict = model.VerdictBet
		rec.Side = model.SidePlayer
		rec.Stake = cfg.BaseStake()
		rec.Rationale = fmt.Sprintf("bet Player at %.1f%% over the last %d decided rounds", rec.PlayerRate*100, window)
	case rec.BankerRate >= threshold && rec.BankerRate > rec.PlayerRate:
		rec.Verdict = model.VerdictBet
		rec.Side = model.SideBanker
		rec.Stake = cfg.BaseStake()
		rec.Rationale = fmt.Sprintf("bet Banker at %.1f%% over the last %d decided rounds", rec.BankerRate*100, window)
	default:
		rec.Verdict = model.VerdictAbstain
		rec.Rationale = fmt.Sprintf("no clear edge, consider abstaining (Player %.1f%%, Banker %.1f%%)", rec.PlayerRate*100, rec.BankerRate*100)
	}

	return rec
}

// RecommendConfidence Политика с размером ставки по уверенности.
// Доли считаются по всему журналу, ничьи входят в знаменатель.
// При равенстве долей выбирается Banker
func RecommendConfidence(rounds []model.Round, streak model.Streak, cfg config.EngineConfig) model.Recommendation {
	rec := model.Recommendation{
		Policy: model.PolicyConfidence,
		Stake:  decimal.Zero,
	}

	if len(rounds) == 0 {
		rec.Verdict = model.VerdictInsufficientData
		rec.Rationale = "insufficient data: ledger is empty"
		return rec
	}

	var player, banker int64
	for _, r := range rounds {
		switch r.Outcome {
		case model.OutcomePlayer:
			player++
		case model.OutcomeBanker:
			banker++
		}
	}
	total := decimal.NewFromInt(int64(len(rounds)))
	playerRate := decimal.NewFromInt(player).Div(total)
	bankerRate := decimal.NewFromInt(banker).Div(total)

	side := model.SidePlayer
	if bankerRate.GreaterThanOrEqual(playerRate) {
		side = model.SideBanker
	}

	confidence := playerRate.Sub(bankerRate).Abs()
	one := decimal.NewFromInt(1)
	if confidence.GreaterThan(one) {
		confidence = one
	}

	base := cfg.BaseStake()
	stake := base.Add(confidence.Mul(cfg.MaxStake().Sub(base)))
	if stake.LessThan(base) {
		stake = base
	}

	adjust := "no streak adjustment"
	switch streak.Side {
	case side.Outcome():
		stake = stake.Mul(cfg.SameSideStreakFactor())
		adjust = fmt.Sprintf("x%s for %d-round %s streak", cfg.SameSideStreakFactor(), streak.Length, streak.Side)
	case side.Other().Outcome():
		stake = stake.Mul(cfg.OppositeSideStreakFactor())
		adjust = fmt.Sprintf("x%s against %d-round %s streak", cfg.OppositeSideStreakFactor(), streak.Length, streak.Side)
	}

	stake = stake.Truncate(0)
	if stake.LessThan(cfg.StakeFloor()) {
		stake = cfg.StakeFloor()
	}

	rec.Verdict = model.VerdictBet
	rec.Side = side
	rec.Stake = stake
	rec.PlayerRate = playerRate.InexactFloat64()
	rec.BankerRate = bankerRate.InexactFloat64()
	rec.Confidence = confidence.InexactFloat64()
	rec.Rationale = fmt.Sprintf("bet %s %s (Player %.1f%%, Banker %.1f%%, confidence %.2f, %s)",
		side, stake, rec.PlayerRate*100, rec.BankerRate*100, rec.Confidence, adjust)

	return rec
}
