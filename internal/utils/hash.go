package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied to every password hash.
// Fixed at compile time so that all stored hashes share the same cost.
const bcryptCost = 10

// HashPassword derives a bcrypt hash from the given plaintext password.
//
// bcrypt generates a random per-call salt, so hashing the same password twice
// yields different outputs. The plaintext must flow through this function
// exactly once per "set password" operation — at registration or explicit
// password change — and never on unrelated persistence paths.
//
// Returns an error if the plaintext is empty or exceeds bcrypt's 72-byte
// input limit.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("cannot hash an empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
//
// The comparison is performed by bcrypt itself and is safe against timing
// attacks. A mismatch (or a malformed hash) returns false, never an error:
// callers treat both identically as failed authentication.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
