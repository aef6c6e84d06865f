package sheet

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

// UseFeature spends one use of a feature
func (s *Session) UseFeature(ctx context.Context, input *UseFeatureInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "use feature", func(c *entity.Character) (*entity.Character, error) {
		return engine.UseFeature(c, input.FeatureID)
	})
}

// RecoverFeature restores one use of a feature
func (s *Session) RecoverFeature(ctx context.Context, input *RecoverFeatureInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "recover feature", func(c *entity.Character) (*entity.Character, error) {
		return engine.RecoverFeature(c, input.FeatureID)
	})
}

// AddFeature stores a new feature under a generated ID
func (s *Session) AddFeature(ctx context.Context, input *AddFeatureInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	f := input.Feature
	f.ID = s.ids.Generate(idgen.KindFeature)
	return s.apply(ctx, "add feature", func(c *entity.Character) (*entity.Character, error) {
		return engine.AddFeature(c, f)
	})
}

// UpdateFeature replaces a feature by ID
func (s *Session) UpdateFeature(ctx context.Context, input *UpdateFeatureInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "update feature", func(c *entity.Character) (*entity.Character, error) {
		return engine.UpdateFeature(c, input.Feature)
	})
}

// DeleteFeature removes a feature after confirmation
func (s *Session) DeleteFeature(ctx context.Context, input *DeleteFeatureInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	if _, err := s.requireEntry(entity.EntityTypeFeature, input.FeatureID); err != nil {
		return nil, err
	}
	return s.applyConfirmed(ctx, "delete feature", promptDeleteFeature, func(c *entity.Character) (*entity.Character, error) {
		return engine.DeleteFeature(c, input.FeatureID)
	})
}

// AdjustSpellSlot moves the remaining slots of a level by delta
func (s *Session) AdjustSpellSlot(ctx context.Context, input *AdjustSpellSlotInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "adjust spell slot", func(c *entity.Character) (*entity.Character, error) {
		return engine.AdjustSpellSlot(c, input.Level, input.Delta)
	})
}

// SetSpellSlotTotal changes how many slots a level has
func (s *Session) SetSpellSlotTotal(ctx context.Context, input *SetSpellSlotTotalInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set spell slot total", func(c *entity.Character) (*entity.Character, error) {
		return engine.SetSpellSlotTotal(c, input.Level, input.Total)
	})
}

// CastSpell spends a slot of the spell's level after confirmation. Cantrips
// cost nothing and skip the prompt; with no slot left a warning is returned
// and nothing changes.
func (s *Session) CastSpell(ctx context.Context, input *CastSpellInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	e, err := s.requireEntry(entity.EntityTypeSpell, input.SpellID)
	if err != nil {
		return nil, err
	}
	spell, _ := e.(entity.Spell)

	if spell.Level == 0 {
		return s.unchanged(""), nil
	}
	if !engine.CanCast(s.current, spell) {
		return s.unchanged(WarningNoSlot), nil
	}

	return s.applyConfirmed(ctx, "cast spell", promptCast(spell.Name, spell.Level), func(c *entity.Character) (*entity.Character, error) {
		next, _, err := engine.CastSpell(c, spell.ID)
		return next, err
	})
}

// SetSpellcastingAttribute chooses the attribute behind spell DC and attack
func (s *Session) SetSpellcastingAttribute(ctx context.Context, input *SetSpellcastingAttributeInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set spellcasting attribute", func(c *entity.Character) (*entity.Character, error) {
		return engine.SetSpellcastingAttribute(c, input.Attribute)
	})
}

// AddSpell stores a new spell under a generated ID
func (s *Session) AddSpell(ctx context.Context, input *AddSpellInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	sp := input.Spell
	sp.ID = s.ids.Generate(idgen.KindSpell)
	return s.apply(ctx, "add spell", func(c *entity.Character) (*entity.Character, error) {
		return engine.AddSpell(c, sp)
	})
}

// UpdateSpell replaces a spell by ID
func (s *Session) UpdateSpell(ctx context.Context, input *UpdateSpellInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "update spell", func(c *entity.Character) (*entity.Character, error) {
		return engine.UpdateSpell(c, input.Spell)
	})
}

// TogglePrepared flips whether a spell is prepared
func (s *Session) TogglePrepared(ctx context.Context, input *TogglePreparedInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "toggle prepared", func(c *entity.Character) (*entity.Character, error) {
		return engine.TogglePrepared(c, input.SpellID)
	})
}

// DeleteSpell removes a spell after confirmation
func (s *Session) DeleteSpell(ctx context.Context, input *DeleteSpellInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	if _, err := s.requireEntry(entity.EntityTypeSpell, input.SpellID); err != nil {
		return nil, err
	}
	return s.applyConfirmed(ctx, "delete spell", promptDeleteSpell, func(c *entity.Character) (*entity.Character, error) {
		return engine.DeleteSpell(c, input.SpellID)
	})
}
