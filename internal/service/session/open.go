package session

import (
	"baccarat_ledger/internal/model"
	"baccarat_ledger/pkg/token"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Open Открывает новую сессию с пустым журналом
func (s *serv) Open(ctx context.Context) (*model.SessionData, error) {
	now := s.now()

	// Заодно чистим истекшие сессии
	s.sweep(ctx)

	sess := &model.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TokenDuration()),
	}

	if err := s.sessionRepo.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err := s.ledgerRepo.Create(ctx, sess.ID); err != nil {
		_ = s.sessionRepo.DeleteSession(ctx, sess.ID)
		return nil, fmt.Errorf("create ledger: %w", err)
	}

	tokenStr, err := token.GenerateSessionToken(sess.ID, s.cfg.TokenSecretKey(), sess.ExpiresAt)
	if err != nil {
		_ = s.Close(ctx, sess.ID)
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	s.log.Info("session opened", zap.String("session_id", sess.ID), zap.Time("expires_at", sess.ExpiresAt))

	return &model.SessionData{
		SessionID: sess.ID,
		Token:     tokenStr,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// sweep Удаляет истекшие сессии вместе с журналами
func (s *serv) sweep(ctx context.Context) {
	expired, err := s.sessionRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.Warn("sweep expired sessions", zap.Error(err))
		return
	}
	for _, id := range expired {
		if err := s.ledgerRepo.Drop(ctx, id); err != nil {
			s.log.Warn("drop expired ledger", zap.String("session_id", id), zap.Error(err))
			continue
		}
		s.log.Debug("session expired", zap.String("session_id", id))
	}
}
