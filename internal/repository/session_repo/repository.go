package session_repo

import (
	"baccarat_ledger/internal/model"
	"baccarat_ledger/internal/repository"
	"context"
	"sync"
	"time"
)

type repo struct {
	mtx      sync.RWMutex
	sessions map[string]model.Session
}

func NewSessionRepository() repository.SessionRepository {
	return &repo{
		sessions: make(map[string]model.Session),
	}
}

// CreateSession - сохраняет сессию
// Принимает model.Session - (ID, CreatedAt, ExpiresAt)
func (r *repo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.sessions[session.ID] = *session
	return nil
}

// GetSession - получить сессию по ID
func (r *repo) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

// DeleteSession - удаляет сессию. Удаление отсутствующей сессии не ошибка
func (r *repo) DeleteSession(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

func (r *repo) DeleteExpired(_ context.Context, now time.Time) ([]string, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	var expired []string
	for id, s := range r.sessions {
		if s.Expired(now) {
			expired = append(expired, id)
			delete(r.sessions, id)
		}
	}
	return expired, nil
}
