package repository

import (
	"context"

	"task-manager-pro/internal/domain"
)

// SessionRepository defines store operations for Session records.
type SessionRepository interface {
	// Save records a token-to-username mapping. Token collisions are treated
	// as negligible and are not checked.
	Save(ctx context.Context, session *domain.Session) error
	// GetByToken resolves a token to its session, or ErrSessionNotFound.
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
}
