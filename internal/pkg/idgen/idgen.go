// Package idgen generates identifiers for sheet entries
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen Generator

// Kind is the entry family an ID is minted for. It becomes the ID prefix.
type Kind string

// Entry kinds
const (
	KindItem     Kind = "item"
	KindFeature  Kind = "feat"
	KindSpell    Kind = "spell"
	KindCreature Kind = "creature"
	KindNote     Kind = "note"
)

// Generator generates unique identifiers for new entries
type Generator interface {
	Generate(kind Kind) string
}

// UUIDGenerator mints <kind>_<uuid> identifiers
type UUIDGenerator struct{}

// NewUUID creates a UUID generator
func NewUUID() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate(kind Kind) string {
	id := uuid.New().String()
	if kind == "" {
		return id
	}
	return fmt.Sprintf("%s_%s", kind, id)
}

// SequentialGenerator mints <kind>_001, <kind>_002, ... with one counter per
// kind, matching the IDs of the built-in templates. Meant for tests and demos.
type SequentialGenerator struct {
	mu       sync.Mutex
	counters map[Kind]int
}

// NewSequential creates a new sequential generator
func NewSequential() *SequentialGenerator {
	return &SequentialGenerator{counters: make(map[Kind]int)}
}

// Generate creates the next sequential ID for kind
func (g *SequentialGenerator) Generate(kind Kind) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counters[kind]++
	return fmt.Sprintf("%s_%03d", kind, g.counters[kind])
}
