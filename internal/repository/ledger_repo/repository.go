package ledger_repo

import (
	"baccarat_ledger/internal/model"
	"baccarat_ledger/internal/repository"
	"context"
	"sync"
)

// Журнал одной сессии. Записи только добавляются, очищается целиком
type ledger struct {
	rounds []model.Round
}

// Реализация хранилища журналов в памяти процесса
type repo struct {
	mtx     sync.RWMutex
	ledgers map[string]*ledger
}

// NewLedgerRepository Конструктор пустого хранилища
func NewLedgerRepository() repository.LedgerRepository {
	return &repo{
		ledgers: make(map[string]*ledger),
	}
}

// Create - создает пустой журнал для сессии
func (r *repo) Create(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.ledgers[sessionID]; ok {
		return repository.ErrAlreadyExists
	}
	r.ledgers[sessionID] = &ledger{rounds: make([]model.Round, 0)}
	return nil
}

// Append - добавляет раунд в конец журнала.
// Порядковый номер выставляется здесь, возвращается сохраненная запись
func (r *repo) Append(_ context.Context, sessionID string, round model.Round) (model.Round, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.ledgers[sessionID]
	if !ok {
		return model.Round{}, repository.ErrNotFound
	}

	round.Seq = len(l.rounds) + 1
	l.rounds = append(l.rounds, round)
	return round, nil
}

// Rounds - копия всего журнала
func (r *repo) Rounds(ctx context.Context, sessionID string) ([]model.Round, error) {
	return r.Tail(ctx, sessionID, -1)
}

// Tail - копия последних n записей. При n < 0 возвращается весь журнал
func (r *repo) Tail(_ context.Context, sessionID string, n int) ([]model.Round, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	l, ok := r.ledgers[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if n < 0 || n > len(l.rounds) {
		n = len(l.rounds)
	}
	out := make([]model.Round, n)
	copy(out, l.rounds[len(l.rounds)-n:])
	return out, nil
}

// Reset - очищает журнал, сам журнал остается за сессией
func (r *repo) Reset(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.ledgers[sessionID]
	if !ok {
		return repository.ErrNotFound
	}
	l.rounds = make([]model.Round, 0)
	return nil
}

// Drop - удаляет журнал вместе с сессией
func (r *repo) Drop(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.ledgers, sessionID)
	return nil
}
