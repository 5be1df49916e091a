package session

import (
	"baccarat_ledger/internal/repository"
	"baccarat_ledger/internal/service"
	"baccarat_ledger/pkg/token"
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Resolve Проверяет токен и возвращает ID живой сессии
func (s *serv) Resolve(ctx context.Context, tokenStr string) (string, error) {
	claims, err := token.VerifyToken(tokenStr, s.cfg.TokenSecretKey())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// Токен истек, сессию и журнал удаляем сразу
			if id, idErr := token.ExpiredSessionID(tokenStr, s.cfg.TokenSecretKey()); idErr == nil {
				if closeErr := s.Close(ctx, id); closeErr != nil {
					return "", closeErr
				}
			}
			return "", service.ErrSessionExpired
		}
		return "", fmt.Errorf("%w: %v", service.ErrInvalidToken, err)
	}

	sess, err := s.sessionRepo.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", service.ErrSessionNotFound
		}
		return "", err
	}

	// Сессия истекла, журнал больше не нужен
	if sess.Expired(s.now()) {
		if err := s.Close(ctx, sess.ID); err != nil {
			return "", err
		}
		return "", service.ErrSessionExpired
	}

	return sess.ID, nil
}
