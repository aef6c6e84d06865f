package sheet

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

// ChangeCreatureHP moves a creature's hit points by delta
func (s *Session) ChangeCreatureHP(ctx context.Context, input *ChangeCreatureHPInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "change creature hp", func(c *entity.Character) (*entity.Character, error) {
		return engine.ChangeCreatureHP(c, input.CreatureID, input.Delta)
	})
}

// AddCreature stores a new companion under a generated ID. An empty type,
// speed or zeroed stats are filled from the new creature template.
func (s *Session) AddCreature(ctx context.Context, input *AddCreatureInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	cr := input.Creature
	cr = withCreatureDefaults(cr, engine.NewCreature(s.ids.Generate(idgen.KindCreature), cr.Name))
	return s.apply(ctx, "add creature", func(c *entity.Character) (*entity.Character, error) {
		return engine.AddCreature(c, cr)
	})
}

// UpdateCreature replaces a creature by ID
func (s *Session) UpdateCreature(ctx context.Context, input *UpdateCreatureInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "update creature", func(c *entity.Character) (*entity.Character, error) {
		return engine.UpdateCreature(c, input.Creature)
	})
}

// DeleteCreature removes a creature after confirmation
func (s *Session) DeleteCreature(ctx context.Context, input *DeleteCreatureInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	if _, err := s.requireEntry(entity.EntityTypeCreature, input.CreatureID); err != nil {
		return nil, err
	}
	return s.applyConfirmed(ctx, "delete creature", promptDeleteCreature, func(c *entity.Character) (*entity.Character, error) {
		return engine.DeleteCreature(c, input.CreatureID)
	})
}

// AddNote prepends a session note dated today
func (s *Session) AddNote(ctx context.Context) (*Result, error) {
	id := s.ids.Generate(idgen.KindNote)
	now := s.clock.Now()
	return s.apply(ctx, "add note", func(c *entity.Character) (*entity.Character, error) {
		return engine.AddNote(c, id, now)
	})
}

// UpdateNote replaces a note by ID
func (s *Session) UpdateNote(ctx context.Context, input *UpdateNoteInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "update note", func(c *entity.Character) (*entity.Character, error) {
		return engine.UpdateNote(c, input.Note)
	})
}

// DeleteNote removes a note after confirmation
func (s *Session) DeleteNote(ctx context.Context, input *DeleteNoteInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	if _, err := s.requireEntry(entity.EntityTypeNote, input.NoteID); err != nil {
		return nil, err
	}
	return s.applyConfirmed(ctx, "delete note", promptDeleteNote, func(c *entity.Character) (*entity.Character, error) {
		return engine.DeleteNote(c, input.NoteID)
	})
}

// ExportNote returns a note's text file name and content
func (s *Session) ExportNote(input *ExportNoteInput) (*ExportOutput, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	e, err := s.requireEntry(entity.EntityTypeNote, input.NoteID)
	if err != nil {
		return nil, err
	}
	n, _ := e.(entity.Note)
	return &ExportOutput{FileName: engine.NoteFileName(n), Data: []byte(n.Content)}, nil
}

func withCreatureDefaults(cr, template entity.Creature) entity.Creature {
	cr.ID = template.ID
	if strings.TrimSpace(cr.Type) == "" {
		cr.Type = template.Type
	}
	if cr.HP == (entity.CreatureHP{}) {
		cr.HP = template.HP
	}
	if cr.AC == 0 {
		cr.AC = template.AC
	}
	if strings.TrimSpace(cr.Speed) == "" {
		cr.Speed = template.Speed
	}
	if cr.Stats == (entity.CreatureStats{}) {
		cr.Stats = template.Stats
	}
	if cr.Attacks == nil {
		cr.Attacks = template.Attacks
	}
	return cr
}
