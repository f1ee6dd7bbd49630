package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered row identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUID v7, falling back to a random v4 if the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether s is a well-formed UUID.
func IsValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}
