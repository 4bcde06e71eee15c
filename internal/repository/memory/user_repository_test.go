package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager-pro/internal/domain"
	"task-manager-pro/internal/repository"
	"task-manager-pro/internal/repository/memory"
)

func TestUserCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "digest"})
	require.NoError(t, err)

	user, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "digest", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserCreateRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "d1"}))

	err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "d2"})
	assert.ErrorIs(t, err, repository.ErrUserExists)

	// Usernames are case-sensitive; a different casing is a different user.
	require.NoError(t, repo.Create(ctx, &domain.User{Username: "Alice", PasswordHash: "d3"}))
}

func TestUserLookupUnknown(t *testing.T) {
	repo := memory.NewUserRepository()

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
