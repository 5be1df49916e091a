package service

import (
	"baccarat_ledger/internal/model"
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRound    = errors.New("invalid round")
	ErrInvalidHand     = errors.New("invalid hand")
	ErrInvalidBet      = errors.New("invalid bet")
	ErrInvalidPolicy   = errors.New("invalid recommendation policy")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidToken    = errors.New("invalid session token")
)

// RoundService Журнал раундов и движок рекомендаций.
// Все методы кроме EvaluateHands и SettleBet работают с журналом сессии из контекста
type RoundService interface {
	EvaluateHands(player, banker model.Hand) (*model.HandEvaluation, error)
	SettleBet(side model.Side, outcome model.Outcome, stake decimal.Decimal) (*model.BetSettlement, error)

	Record(ctx context.Context, input model.RoundInput) (*model.Round, error)
	Reset(ctx context.Context) error
	Rounds(ctx context.Context) ([]model.Round, error)
	Window(ctx context.Context, n int) ([]model.Round, error)
	Statistics(ctx context.Context) (*model.Statistics, error)
	Streak(ctx context.Context) (*model.Streak, error)
	Recommend(ctx context.Context, policy model.Policy) (*model.Recommendation, error)
	Checkpoint(ctx context.Context) (*model.Checkpoint, error)
}

type SessionService interface {
	Open(ctx context.Context) (*model.SessionData, error)
	Resolve(ctx context.Context, token string) (sessionID string, err error)
	Close(ctx context.Context, sessionID string) error
}
