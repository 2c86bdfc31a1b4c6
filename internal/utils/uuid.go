package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered (v7) ids for notes, todos, profiles and
// emails, falling back to v4 if the v7 clock source fails.
type UUIDGenerator struct{}

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

// IsUUID reports whether s parses as a UUID. Used to reject malformed path
// ids before they hit the database.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
