package repository

import (
	"baccarat_ledger/internal/model"
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound Запись (журнал или сессия) не найдена
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists Запись с таким ID уже существует
	ErrAlreadyExists = errors.New("already exists")
)

// LedgerRepository Журналы раундов, по одному на сессию
type LedgerRepository interface {
	Create(ctx context.Context, sessionID string) error
	Append(ctx context.Context, sessionID string, round model.Round) (model.Round, error)
	Rounds(ctx context.Context, sessionID string) ([]model.Round, error)
	Tail(ctx context.Context, sessionID string, n int) ([]model.Round, error)
	Reset(ctx context.Context, sessionID string) error
	Drop(ctx context.Context, sessionID string) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteExpired удаляет истекшие сессии и возвращает их ID
	DeleteExpired(ctx context.Context, now time.Time) ([]string, error)
}
