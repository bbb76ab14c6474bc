package mocks

import (
	"fmt"

	"github.com/mcoot/moviecat/internal/dependencies/idgen"
)

// MockIDGenerator is a mock implementation of idgen.Generator for testing
type MockIDGenerator struct {
	// Queued is a queue of IDs to return before falling back to the sequence
	Queued []string
	index  int

	// Prefix is used for sequential IDs once the queue is exhausted
	Prefix string
	next   int
}

// Ensure MockIDGenerator implements Generator
var _ idgen.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a generator returning U1, U2, ...
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{Prefix: "U"}
}

// NewID returns the next queued ID, or the next sequential ID
func (g *MockIDGenerator) NewID() string {
	if g.index < len(g.Queued) {
		id := g.Queued[g.index]
		g.index++
		return id
	}
	g.next++
	return fmt.Sprintf("%s%d", g.Prefix, g.next)
}

// Queue adds IDs to the result queue
func (g *MockIDGenerator) Queue(ids ...string) {
	g.Queued = append(g.Queued, ids...)
}
