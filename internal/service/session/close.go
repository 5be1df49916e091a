package session

import (
	"context"

	"go.uber.org/zap"
)

// Close Закрывает сессию и удаляет ее журнал
func (s *serv) Close(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	if err := s.ledgerRepo.Drop(ctx, sessionID); err != nil {
		return err
	}

	s.log.Info("session closed", zap.String("session_id", sessionID))
	return nil
}
