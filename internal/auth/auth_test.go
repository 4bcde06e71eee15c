package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager-pro/internal/auth"
)

func TestHashIsDeterministicAndUnsalted(t *testing.T) {
	hasher := auth.NewSHA3Hasher()

	first := hasher.Hash("pw1")
	second := hasher.Hash("pw1")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "hex-encoded 256-bit digest")

	assert.NotEqual(t, first, hasher.Hash("pw2"))
}

func TestVerify(t *testing.T) {
	hasher := auth.NewSHA3Hasher()
	digest := hasher.Hash("correct horse")

	assert.True(t, hasher.Verify("correct horse", digest))
	assert.False(t, hasher.Verify("wrong", digest))
	assert.False(t, hasher.Verify("correct horse", "not a digest"))
}

func TestNewTokenShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := auth.NewToken()
		require.NoError(t, err)
		assert.Len(t, token, 32, "16 random bytes hex encoded")
		assert.Regexp(t, "^[0-9a-f]{32}$", token)

		_, dup := seen[token]
		assert.False(t, dup, "tokens must be unpredictable, not repeated")
		seen[token] = struct{}{}
	}
}
