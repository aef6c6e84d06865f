package sheet

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// SetAttribute sets an ability score
func (s *Session) SetAttribute(ctx context.Context, input *SetAttributeInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set attribute", func(c *entity.Character) (*entity.Character, error) {
		return engine.SetAttribute(c, input.Attribute, input.Value)
	})
}

// ToggleSaveProficiency flips proficiency in a saving throw
func (s *Session) ToggleSaveProficiency(ctx context.Context, input *ToggleSaveProficiencyInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "toggle save proficiency", func(c *entity.Character) (*entity.Character, error) {
		return engine.ToggleSaveProficiency(c, input.Attribute)
	})
}

// CycleSkill advances a skill to its next proficiency level
func (s *Session) CycleSkill(ctx context.Context, input *CycleSkillInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "cycle skill", func(c *entity.Character) (*entity.Character, error) {
		return engine.CycleSkill(c, input.Skill)
	})
}

// SetIdentity changes name, race, class, level and the other identity fields
func (s *Session) SetIdentity(ctx context.Context, input *SetIdentityInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set identity", pure(func(c *entity.Character) *entity.Character {
		return engine.SetIdentity(c, input.Update)
	}))
}

// SetCombatStats changes the stored combat numbers
func (s *Session) SetCombatStats(ctx context.Context, input *SetCombatStatsInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set combat stats", pure(func(c *entity.Character) *entity.Character {
		return engine.SetCombatStats(c, input.Update)
	}))
}

// SetBio replaces the biography and campaign notes
func (s *Session) SetBio(ctx context.Context, input *SetBioInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set bio", pure(func(c *entity.Character) *entity.Character {
		return engine.SetBio(c, input.Bio, input.CampaignNotes)
	}))
}
