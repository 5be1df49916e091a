package round

import (
	"baccarat_ledger/internal/config"
	"baccarat_ledger/internal/middleware"
	"baccarat_ledger/internal/repository"
	"baccarat_ledger/internal/service"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type serv struct {
	cfg        config.EngineConfig
	ledgerRepo repository.LedgerRepository
	log        *zap.Logger
	now        func() time.Time
}

// NewRoundService Журнал раундов сессии и движок рекомендаций
func NewRoundService(
	cfg config.EngineConfig,
	ledgerRepo repository.LedgerRepository,
	log *zap.Logger,
) service.RoundService {
	return &serv{
		cfg:        cfg,
		ledgerRepo: ledgerRepo,
		log:        log,
		now:        time.Now,
	}
}

// sessionID ID сессии из контекста запроса
func sessionID(ctx context.Context) (string, error) {
	id, ok := middleware.SessionIDFromContext(ctx)
	if !ok {
		return "", service.ErrSessionNotFound
	}
	return id, nil
}

// mapRepoErr Ошибки хранилища в ошибки сервиса
func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return service.ErrSessionNotFound
	}
	return err
}
