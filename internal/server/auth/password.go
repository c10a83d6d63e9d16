// Package auth implements the security primitives of the server: password
// hashing and verification, and session token issuance.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor applied when no explicit cost is
// configured. Raising it slows both brute-force attempts and logins.
const DefaultBcryptCost = 10

// HashPassword hashes a plaintext password using bcrypt with the given cost.
// A cost below bcrypt.MinCost falls back to DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a plaintext password with a stored bcrypt hash.
// A mismatch returns (false, nil); an error is returned only when the stored
// hash itself is malformed. bcrypt's comparison does not leak how much of
// the password matched.
func CheckPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("error verifying password: %w", err)
}
