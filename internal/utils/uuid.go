package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique string identifiers for customers and token
// IDs. It is injected into the service layer so tests can substitute a
// deterministic generator.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
