package utils

import "github.com/google/uuid"

// UUIDGenerator produces record identifiers. UUIDv7 is time-ordered, so ids
// sort roughly by creation time in indexes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random v4 if the v7 clock source
// fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
