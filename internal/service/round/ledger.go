package round

import (
	"baccarat_ledger/internal/model"
	"baccarat_ledger/internal/service"
	"context"

	"go.uber.org/zap"
)

// Reset Очищает журнал сессии
func (s *serv) Reset(ctx context.Context) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	if err := s.ledgerRepo.Reset(ctx, id); err != nil {
		return mapRepoErr(err)
	}

	s.log.Info("ledger reset", zap.String("session_id", id))
	return nil
}

func (s *serv) Rounds(ctx context.Context) ([]model.Round, error) {
	return s.rounds(ctx, -1)
}

// Window Последние n раундов
func (s *serv) Window(ctx context.Context, n int) ([]model.Round, error) {
	if n <= 0 {
		return []model.Round{}, nil
	}
	return s.rounds(ctx, n)
}

func (s *serv) Statistics(ctx context.Context) (*model.Statistics, error) {
	rounds, err := s.rounds(ctx, -1)
	if err != nil {
		return nil, err
	}
	stats := ComputeStatistics(rounds)
	return &stats, nil
}

func (s *serv) Streak(ctx context.Context) (*model.Streak, error) {
	rounds, err := s.rounds(ctx, -1)
	if err != nil {
		return nil, err
	}
	streak := DetectStreak(rounds)
	return &streak, nil
}

// Recommend Рекомендация на следующую ставку
func (s *serv) Recommend(ctx context.Context, policy model.Policy) (*model.Recommendation, error) {
	if policy == "" {
		policy = model.PolicyThreshold
	}
	if !policy.Valid() {
		return nil, service.ErrInvalidPolicy
	}

	rounds, err := s.rounds(ctx, -1)
	if err != nil {
		return nil, err
	}

	rec := Recommend(policy, rounds, s.cfg)
	s.log.Debug("recommendation computed",
		zap.String("policy", string(rec.Policy)),
		zap.String("verdict", string(rec.Verdict)),
		zap.String("side", string(rec.Side)),
	)
	return &rec, nil
}

// Checkpoint Отчет по последним раундам, Due показывает пора ли его выводить
func (s *serv) Checkpoint(ctx context.Context) (*model.Checkpoint, error) {
	rounds, err := s.rounds(ctx, -1)
	if err != nil {
		return nil, err
	}
	cp := ComputeCheckpoint(rounds, s.cfg.CheckpointWindow())
	return &cp, nil
}

func (s *serv) rounds(ctx context.Context, n int) ([]model.Round, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	var rounds []model.Round
	if n < 0 {
		rounds, err = s.ledgerRepo.Rounds(ctx, id)
	} else {
		rounds, err = s.ledgerRepo.Tail(ctx, id, n)
	}
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return rounds, nil
}
