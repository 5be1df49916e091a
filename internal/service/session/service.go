package session

import (
	"baccarat_ledger/internal/config"
	"baccarat_ledger/internal/repository"
	"baccarat_ledger/internal/service"
	"time"

	"go.uber.org/zap"
)

type serv struct {
	cfg         config.SessionConfig
	sessionRepo repository.SessionRepository
	ledgerRepo  repository.LedgerRepository
	log         *zap.Logger
	now         func() time.Time
}

// NewSessionService Сессии и принадлежащие им журналы
func NewSessionService(
	cfg config.SessionConfig,
	sessionRepo repository.SessionRepository,
	ledgerRepo repository.LedgerRepository,
	log *zap.Logger,
) service.SessionService {
	return &serv{
		cfg:         cfg,
		sessionRepo: sessionRepo,
		ledgerRepo:  ledgerRepo,
		log:         log,
		now:         time.Now,
	}
}
