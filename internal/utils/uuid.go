package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for experience and education entries.
// Version 7 UUIDs are time-ordered, which keeps entry identifiers roughly
// sortable by creation time.
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
