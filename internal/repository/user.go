package repository

import (
	"context"

	"task-manager-pro/internal/domain"
)

// UserRepository defines store operations for User records.
type UserRepository interface {
	// Create stores a new user. Fails with ErrUserExists when the username
	// is already taken (case-sensitive exact match).
	Create(ctx context.Context, user *domain.User) error
	// GetByUsername returns the user with exactly the given username, or
	// ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
