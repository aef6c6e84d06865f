package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

// Reset replaces the record with the blank template after confirmation
func (s *Session) Reset(ctx context.Context) (*Result, error) {
	return s.applyConfirmed(ctx, "reset", promptReset, func(*entity.Character) (*entity.Character, error) {
		return engine.Reset(), nil
	})
}

// ResetToDefaults deletes the stored blob after confirmation and reopens the
// default record. Nothing is saved until the next change.
func (s *Session) ResetToDefaults(ctx context.Context) (*Result, error) {
	if s.current == nil {
		return nil, errors.FailedPrecondition("sheet is not open")
	}

	ok, err := s.confirm.Confirm(ctx, promptResetDefaults)
	if err != nil {
		return nil, errors.Wrap(err, "reset to defaults confirmation failed")
	}
	if !ok {
		return &Result{Character: s.current.Clone(), Declined: true}, nil
	}

	out, err := s.repo.Delete(ctx, sheetrepo.DeleteInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete stored sheet")
	}

	slog.InfoContext(ctx, "deleted stored sheet", "existed", out.Existed)

	s.current = entity.Default()
	return &Result{Character: s.current.Clone()}, nil
}

// Import replaces the record with an exported sheet. The data is checked
// before the prompt names the incoming character; a failed check leaves the
// record untouched.
func (s *Session) Import(ctx context.Context, input *ImportInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	if s.current == nil {
		return nil, errors.FailedPrecondition("sheet is not open")
	}

	incoming, err := engine.Import(input.Data)
	if err != nil {
		return nil, err
	}

	return s.applyConfirmed(ctx, "import", promptImport(incoming.Name), func(*entity.Character) (*entity.Character, error) {
		return incoming, nil
	})
}

// Export renders the record as an indented JSON file
func (s *Session) Export() (*ExportOutput, error) {
	c, err := s.Character()
	if err != nil {
		return nil, err
	}

	data, err := engine.ExportJSON(c)
	if err != nil {
		return nil, err
	}
	return &ExportOutput{FileName: engine.ExportFileName(c), Data: data}, nil
}
