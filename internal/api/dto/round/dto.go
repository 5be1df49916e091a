package round

import "github.com/shopspring/decimal"

type Card struct {
	Suit  string `json:"suit"`  // ♠ ♥ ♦ ♣ или пусто для пустого слота
	Point int    `json:"point"` // 0-9
}

type EvaluateHandsRequest struct {
	Player []Card `json:"player"` // До 3 карт
	Banker []Card `json:"banker"`
}

type EvaluateHandsResponse struct {
	PlayerTotal int    `json:"player_total"`
	BankerTotal int    `json:"banker_total"`
	Outcome     string `json:"outcome"`
	PlayerCards string `json:"player_cards"`
	BankerCards string `json:"banker_cards"`
}

type SettleBetRequest struct {
	BetSide string          `json:"bet_side"` // Player | Banker
	Outcome string          `json:"outcome"`  // Player | Banker | Tie
	Stake   decimal.Decimal `json:"stake"`    // Число или десятичная строка, >= 0
}

type SettleBetResponse struct {
	BetSide    string `json:"bet_side"`
	Outcome    string `json:"outcome"`
	Stake      string `json:"stake"`
	Settlement string `json:"settlement"`
	Profit     string `json:"profit"`
}

type RecordRoundRequest struct {
	Outcome     string          `json:"outcome,omitempty"` // Можно не указывать, если переданы обе руки
	BetSide     string          `json:"bet_side"`
	Stake       decimal.Decimal `json:"stake"`
	Settlement  *string         `json:"settlement,omitempty"` // Ручной расчет: Win | Lose | Push
	Description string          `json:"description,omitempty"`
	Player      []Card          `json:"player,omitempty"`
	Banker      []Card          `json:"banker,omitempty"`
}

type RoundResponse struct {
	Seq              int    `json:"seq"`
	Outcome          string `json:"outcome"`
	AutoOutcome      string `json:"auto_outcome,omitempty"`
	PlayerTotal      *int   `json:"player_total,omitempty"`
	BankerTotal      *int   `json:"banker_total,omitempty"`
	BetSide          string `json:"bet_side"`
	Stake            string `json:"stake"`
	Settlement       string `json:"settlement"`
	ManualSettlement bool   `json:"manual_settlement"`
	Profit           string `json:"profit"`
	Description      string `json:"description,omitempty"`
	RecordedAt       string `json:"recorded_at"`
}

type RoundsResponse struct {
	Rounds []RoundResponse `json:"rounds"`
}

type StatisticsResponse struct {
	Total            int                `json:"total"`
	OutcomeCounts    map[string]int     `json:"outcome_counts"`
	Decided          int                `json:"decided"`
	SideWinRate      map[string]float64 `json:"side_win_rate"`
	BetWins          int                `json:"bet_wins"`
	BetLosses        int                `json:"bet_losses"`
	BetPushes        int                `json:"bet_pushes"`
	BetWinRate       float64            `json:"bet_win_rate"`
	CumulativeProfit string             `json:"cumulative_profit"`
}

type StreakResponse struct {
	Length int    `json:"length"`
	Side   string `json:"side,omitempty"`
}

type RecommendationResponse struct {
	Policy     string  `json:"policy"`
	Verdict    string  `json:"verdict"`
	Side       string  `json:"side,omitempty"`
	Stake      string  `json:"stake"`
	PlayerRate float64 `json:"player_rate"`
	BankerRate float64 `json:"banker_rate"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

type CheckpointResponse struct {
	Due        bool    `json:"due"`
	LedgerSize int     `json:"ledger_size"`
	WindowSize int     `json:"window_size"`
	Rounds     int     `json:"rounds"`
	BetWins    int     `json:"bet_wins"`
	BetLosses  int     `json:"bet_losses"`
	BetWinRate float64 `json:"bet_win_rate"`
	Profit     string  `json:"profit"`
}
