package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random identifier for listings, offers and notifications
func GenerateID() string {
	return uuid.NewString()
}

// IsID reports whether s is a well-formed identifier as produced by GenerateID
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
