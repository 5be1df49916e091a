package model

import "github.com/shopspring/decimal"

// Policy Политика рекомендации ставки
type Policy string

const (
	PolicyThreshold  Policy = "threshold"
	PolicyConfidence Policy = "confidence"
)

func (p Policy) Valid() bool {
	return p == PolicyThreshold || p == PolicyConfidence
}

// Verdict Итог рекомендации
type Verdict string

const (
	VerdictBet              Verdict = "bet"
	VerdictAbstain          Verdict = "abstain"
	VerdictInsufficientData Verdict = "insufficient_data"
)

// Recommendation Рекомендация на следующую ставку
type Recommendation struct {
	Policy     Policy
	Verdict    Verdict
	Side       Side // Пусто, если ставить не рекомендуется
	Stake      decimal.Decimal
	PlayerRate float64
	BankerRate float64
	Confidence float64
	Rationale  string
}
