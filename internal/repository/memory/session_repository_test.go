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

func TestSessionSaveAndResolve(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	require.NoError(t, repo.Save(ctx, &domain.Session{Token: "t1", Username: "alice"}))

	session, err := repo.GetByToken(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.False(t, session.CreatedAt.IsZero())
}

func TestSessionUnknownToken(t *testing.T) {
	repo := memory.NewSessionRepository()

	_, err := repo.GetByToken(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestMultipleSessionsPerUser(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepository()

	require.NoError(t, repo.Save(ctx, &domain.Session{Token: "t1", Username: "alice"}))
	require.NoError(t, repo.Save(ctx, &domain.Session{Token: "t2", Username: "alice"}))

	for _, token := range []string{"t1", "t2"} {
		session, err := repo.GetByToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "alice", session.Username)
	}
}
