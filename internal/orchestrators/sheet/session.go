// Package sheet implements the session that owns the live character record
package sheet

//go:generate mockgen -destination=mock/mock_confirmer.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet Confirmer

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

// Confirmer asks the user to approve a destructive operation
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Config holds the dependencies for the session
type Config struct {
	Repository  sheetrepo.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator
	Roller      dice.Roller
	Confirmer   Confirmer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Confirmer == nil {
		vb.RequiredField("Confirmer")
	}

	return vb.Build()
}

// Result is what every mutating call returns
type Result struct {
	// Character is the record after the call; unchanged when Declined
	Character *entity.Character
	// Declined is set when the user refused the confirmation prompt
	Declined bool
	// Warning carries a user-facing notice that is not an error
	Warning string
	// Unsaved is set when the change applied in memory but failed to persist
	Unsaved bool
}

// OpenOutput reports where the opened record came from
type OpenOutput struct {
	Character *entity.Character
	Source    sheetrepo.Source
}

// Session owns exactly one live record. It is not safe for concurrent use.
type Session struct {
	repo    sheetrepo.Repository
	clock   clock.Clock
	ids     idgen.Generator
	roller  dice.Roller
	confirm Confirmer

	current *entity.Character
}

// New creates a new session
func New(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Session{
		repo:    cfg.Repository,
		clock:   cfg.Clock,
		ids:     cfg.IDGenerator,
		roller:  cfg.Roller,
		confirm: cfg.Confirmer,
	}, nil
}

// Open loads the record. Storage problems fall back to the default record.
func (s *Session) Open(ctx context.Context) (*OpenOutput, error) {
	out, err := s.repo.Load(ctx, sheetrepo.LoadInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sheet")
	}
	if out == nil || out.Character == nil {
		return nil, errors.Internal("repository returned no sheet")
	}

	s.current = out.Character

	slog.DebugContext(ctx, "opened sheet",
		"entity_type", s.current.GetType(),
		"entity_id", s.current.GetID(),
		"source", out.Source)

	return &OpenOutput{Character: s.current.Clone(), Source: out.Source}, nil
}

// Character returns a copy of the live record
func (s *Session) Character() (*entity.Character, error) {
	if s.current == nil {
		return nil, errors.FailedPrecondition("sheet is not open")
	}
	return s.current.Clone(), nil
}

type mutation func(c *entity.Character) (*entity.Character, error)

// apply runs fn against the live record, swaps in the result and persists it.
// A failed save is logged and reported through Result.Unsaved.
func (s *Session) apply(ctx context.Context, op string, fn mutation) (*Result, error) {
	if s.current == nil {
		return nil, errors.FailedPrecondition("sheet is not open")
	}

	next, err := fn(s.current)
	if err != nil {
		return nil, errors.Wrapf(err, "%s failed", op)
	}

	s.current = next
	result := &Result{Character: next.Clone()}

	if _, err := s.repo.Save(ctx, sheetrepo.SaveInput{Character: next}); err != nil {
		slog.ErrorContext(ctx, "failed to persist sheet",
			"operation", op,
			"character_id", next.ID,
			"error", err)
		result.Unsaved = true
	}

	return result, nil
}

// applyConfirmed asks prompt first; a decline leaves the record untouched
func (s *Session) applyConfirmed(ctx context.Context, op, prompt string, fn mutation) (*Result, error) {
	if s.current == nil {
		return nil, errors.FailedPrecondition("sheet is not open")
	}

	ok, err := s.confirm.Confirm(ctx, prompt)
	if err != nil {
		return nil, errors.Wrapf(err, "%s confirmation failed", op)
	}
	if !ok {
		slog.DebugContext(ctx, "operation declined", "operation", op)
		return &Result{Character: s.current.Clone(), Declined: true}, nil
	}

	return s.apply(ctx, op, fn)
}

// unchanged reports the live record without touching storage
func (s *Session) unchanged(warning string) *Result {
	return &Result{Character: s.current.Clone(), Warning: warning}
}
