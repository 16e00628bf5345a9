// Package idgen mints the opaque identifiers used across all concepts.
package idgen

import "github.com/google/uuid"

// Generator produces globally unique opaque identifiers on demand.
// Services depend on this interface so tests can inject deterministic ids.
type Generator interface {
	NewId() string
}

type UUID struct{}

func New() *UUID {
	return &UUID{}
}

func (g *UUID) NewId() string {
	return uuid.NewString()
}
