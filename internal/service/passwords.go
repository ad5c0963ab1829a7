package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every stored
// password. Fixed at process level; raising it only affects new hashes,
// existing ones keep the cost embedded in the hash string.
const passwordHashCost = 12

// HashPassword derives a salted bcrypt hash from the plaintext password.
// A fresh salt is generated on every call, so hashing the same input twice
// yields two different hash strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// The salt and cost embedded in hashedPassword drive the recomputation and
// the comparison is constant-time. Any mismatch, including an empty
// plaintext, yields false rather than an error.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
