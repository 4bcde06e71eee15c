package memory

import (
	"context"
	"sync"
	"time"

	"task-manager-pro/internal/domain"
	"task-manager-pro/internal/repository"
)

type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionRepository() repository.SessionRepository {
	return &SessionRepository{sessions: make(map[string]domain.Session)}
}

func (r *SessionRepository) Save(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.CreatedAt = time.Now().UTC()
	r.sessions[session.Token] = *session
	return nil
}

func (r *SessionRepository) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return &session, nil
}
