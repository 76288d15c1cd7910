package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the historical policy minimum. It predates any
// serious hardening effort and is kept for API compatibility.
const MinPasswordLength = 3

const bcryptCost = 10

// HashPassword validates the raw password against the registration
// policy and produces a salted one-way bcrypt hash.
func HashPassword(raw string) (string, error) {
	if len(raw) < MinPasswordLength {
		return "", ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether raw matches the stored hash. A
// non-matching password is not an error, just false.
func VerifyPassword(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
