package utils

import "github.com/google/uuid"

// IDGenerator mints identifiers for new catalog records. Time-ordered v7
// UUIDs keep freshly created models and categories sorted by creation time
// when listed by id.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ModelID returns a fresh model identifier.
func (g *IDGenerator) ModelID() string {
	return "model_" + g.Generate()
}

// CategoryID returns a fresh identifier for a user-created category.
func (g *IDGenerator) CategoryID() string {
	return "custom_" + g.Generate()
}
