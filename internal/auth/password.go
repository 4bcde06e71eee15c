// Package auth holds the credential primitives: password digesting and
// session token generation.
package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// PasswordHasher abstracts the one-way transform applied to plaintext
// passwords before storage.
type PasswordHasher interface {
	Hash(plaintext string) string
	Verify(plaintext, digest string) bool
}

// SHA3Hasher digests passwords with a single unsalted SHA3-256 pass.
// Digests are deterministic: the same plaintext always produces the same
// hex-encoded output. This is a demo credential scheme, not hardened
// password storage.
type SHA3Hasher struct{}

func NewSHA3Hasher() PasswordHasher {
	return SHA3Hasher{}
}

func (SHA3Hasher) Hash(plaintext string) string {
	sum := sha3.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func (h SHA3Hasher) Verify(plaintext, digest string) bool {
	return h.Hash(plaintext) == digest
}
