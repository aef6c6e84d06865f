// Package sheet persists the character record as one JSON blob under a
// fixed key
package sheet

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet Repository

import (
	"context"
	"time"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// DefaultKey is the storage key used when none is configured
const DefaultKey = "dnd-character-sheet-v2"

// Source reports where a loaded record came from
type Source string

// Load sources
const (
	SourceStored  Source = "stored"
	SourceDefault Source = "default"
)

// Repository defines the interface for sheet persistence
type Repository interface {
	// Load reads the saved record merged over the default record.
	// A missing or unreadable blob yields the default record with
	// SourceDefault; the failure is logged, not returned.
	// Returns errors.Canceled if the context is done
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save writes the full record, replacing whatever was stored
	// Returns errors.InvalidArgument for a nil record
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the stored blob so the next Load starts from defaults
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// LoadInput defines the input for loading the record
type LoadInput struct{}

// LoadOutput defines the output for loading the record
type LoadOutput struct {
	Character *entity.Character
	Source    Source
	// UpdatedAt is the last save time; zero for the default record
	UpdatedAt time.Time
}

// SaveInput defines the input for saving the record
type SaveInput struct {
	Character *entity.Character
}

// SaveOutput defines the output for saving the record
type SaveOutput struct {
	UpdatedAt time.Time
}

// DeleteInput defines the input for deleting the stored record
type DeleteInput struct{}

// DeleteOutput defines the output for deleting the stored record
type DeleteOutput struct {
	// Existed is false when there was nothing stored
	Existed bool
}
