package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of a session token. At 16 random bytes the token
// space is large enough that collisions are treated as negligible rather
// than checked.
const tokenBytes = 16

// NewToken returns a fresh opaque session token: 16 random bytes hex encoded.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
