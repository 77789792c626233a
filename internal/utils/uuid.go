package utils

import "github.com/google/uuid"

// NewID returns a new time-ordered identifier (UUID v7) for a stored entity.
// It falls back to a random UUID v4 if the v7 generator fails.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id is a well-formed UUID.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}
