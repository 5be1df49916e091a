package converter

import (
	dto "baccarat_ledger/internal/api/dto/round"
	"baccarat_ledger/internal/model"
	"fmt"
	"time"
)

const moneyPlaces = 2

// ToHand Карты из запроса в руку из трех слотов. Недостающие слоты остаются пустыми
func ToHand(cards []dto.Card) (model.Hand, error) {
	var hand model.Hand
	if len(cards) > model.HandSize {
		return hand, fmt.Errorf("hand has %d cards, max %d", len(cards), model.HandSize)
	}
	for i, c := range cards {
		hand[i] = model.Card{
			Suit:  model.Suit(c.Suit),
			Point: c.Point,
		}
	}
	return hand, nil
}

func ToRoundInput(req dto.RecordRoundRequest) (model.RoundInput, error) {
	input := model.RoundInput{
		Outcome:     model.Outcome(req.Outcome),
		BetSide:     model.Side(req.BetSide),
		Stake:       req.Stake,
		Description: req.Description,
	}

	if req.Settlement != nil {
		settlement := model.Settlement(*req.Settlement)
		input.Settlement = &settlement
	}

	// Руки переносятся как есть. Одну руку без второй отклонит сервис
	if req.Player != nil {
		player, err := ToHand(req.Player)
		if err != nil {
			return input, fmt.Errorf("player: %w", err)
		}
		input.PlayerHand = &player
	}
	if req.Banker != nil {
		banker, err := ToHand(req.Banker)
		if err != nil {
			return input, fmt.Errorf("banker: %w", err)
		}
		input.BankerHand = &banker
	}

	return input, nil
}

func ToEvaluateHandsResponse(eval model.HandEvaluation) dto.EvaluateHandsResponse {
	return dto.EvaluateHandsResponse{
		PlayerTotal: eval.PlayerTotal,
		BankerTotal: eval.BankerTotal,
		Outcome:     string(eval.Outcome),
		PlayerCards: eval.PlayerDescription,
		BankerCards: eval.BankerDescription,
	}
}

func ToSettleBetResponse(s model.BetSettlement) dto.SettleBetResponse {
	return dto.SettleBetResponse{
		BetSide:    string(s.BetSide),
		Outcome:    string(s.Outcome),
		Stake:      s.Stake.StringFixed(moneyPlaces),
		Settlement: string(s.Settlement),
		Profit:     s.Profit.StringFixed(moneyPlaces),
	}
}

func ToRoundResponse(r model.Round) dto.RoundResponse {
	return dto.RoundResponse{
		Seq:              r.Seq,
		Outcome:          string(r.Outcome),
		AutoOutcome:      string(r.AutoOutcome),
		PlayerTotal:      r.PlayerTotal,
		BankerTotal:      r.BankerTotal,
		BetSide:          string(r.BetSide),
		Stake:            r.Stake.StringFixed(moneyPlaces),
		Settlement:       string(r.Settlement),
		ManualSettlement: r.ManualSettlement,
		Profit:           r.Profit.StringFixed(moneyPlaces),
		Description:      r.Description,
		RecordedAt:       r.RecordedAt.UTC().Format(time.RFC3339),
	}
}

func ToRoundsResponse(rounds []model.Round) dto.RoundsResponse {
	result := make([]dto.RoundResponse, len(rounds))
	for i, r := range rounds {
		result[i] = ToRoundResponse(r)
	}
	return dto.RoundsResponse{Rounds: result}
}

func ToStatisticsResponse(s model.Statistics) dto.StatisticsResponse {
	counts := make(map[string]int, len(s.OutcomeCounts))
	for o, n := range s.OutcomeCounts {
		counts[string(o)] = n
	}
	rates := make(map[string]float64, len(s.SideWinRate))
	for side, rate := range s.SideWinRate {
		rates[string(side)] = rate
	}

	return dto.StatisticsResponse{
		Total:            s.Total,
		OutcomeCounts:    counts,
		Decided:          s.Decided,
		SideWinRate:      rates,
		BetWins:          s.BetWins,
		BetLosses:        s.BetLosses,
		BetPushes:        s.BetPushes,
		BetWinRate:       s.BetWinRate,
		CumulativeProfit: s.CumulativeProfit.StringFixed(moneyPlaces),
	}
}

func ToStreakResponse(s model.Streak) dto.StreakResponse {
	return dto.StreakResponse{
		Length: s.Length,
		Side:   string(s.Side),
	}
}

func ToRecommendationResponse(r model.Recommendation) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		Policy:     string(r.Policy),
		Verdict:    string(r.Verdict),
		Side:       string(r.Side),
		Stake:      r.Stake.StringFixed(moneyPlaces),
		PlayerRate: r.PlayerRate,
		BankerRate: r.BankerRate,
		Confidence: r.Confidence,
		Rationale:  r.Rationale,
	}
}

func ToCheckpointResponse(c model.Checkpoint) dto.CheckpointResponse {
	return dto.CheckpointResponse{
		Due:        c.Due,
		LedgerSize: c.LedgerSize,
		WindowSize: c.WindowSize,
		Rounds:     c.Rounds,
		BetWins:    c.BetWins,
		BetLosses:  c.BetLosses,
		BetWinRate: c.BetWinRate,
		Profit:     c.Profit.StringFixed(moneyPlaces),
	}
}
