package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest secret bcrypt can digest.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by HashPassword for secrets bcrypt would
// otherwise refuse.
var ErrPasswordTooLong = errors.New("Password must be at most 72 bytes")

// HashPassword returns a bcrypt digest of password. Every call draws a
// fresh random salt, so hashing the same password twice yields different
// digests. The digest embeds its salt and cost.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether password matches digest. A malformed digest
// is reported as a mismatch.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
