package sheet

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// pure lifts an infallible engine operation into a mutation
func pure(fn func(c *entity.Character) *entity.Character) mutation {
	return func(c *entity.Character) (*entity.Character, error) {
		return fn(c), nil
	}
}

// ApplyDamage takes damage from temporary hit points first
func (s *Session) ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "apply damage", pure(func(c *entity.Character) *entity.Character {
		return engine.ApplyDamage(c, input.Amount)
	}))
}

// Heal restores hit points up to the maximum
func (s *Session) Heal(ctx context.Context, input *HealInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "heal", pure(func(c *entity.Character) *entity.Character {
		return engine.Heal(c, input.Amount)
	}))
}

// SetTempHP replaces temporary hit points
func (s *Session) SetTempHP(ctx context.Context, input *SetTempHPInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set temp hp", pure(func(c *entity.Character) *entity.Character {
		return engine.SetTempHP(c, input.Amount)
	}))
}

// SetMaxHP changes maximum hit points
func (s *Session) SetMaxHP(ctx context.Context, input *SetMaxHPInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set max hp", pure(func(c *entity.Character) *entity.Character {
		return engine.SetMaxHP(c, input.Amount)
	}))
}

// SpendHitDie marks one hit die as used
func (s *Session) SpendHitDie(ctx context.Context) (*Result, error) {
	return s.apply(ctx, "spend hit die", pure(engine.SpendHitDie))
}

// RecoverHitDie returns one used hit die
func (s *Session) RecoverHitDie(ctx context.Context) (*Result, error) {
	return s.apply(ctx, "recover hit die", pure(engine.RecoverHitDie))
}

// RollHitDie spends a hit die and heals by the roll plus the constitution
// modifier. With no dice left nothing is rolled and a warning is returned.
func (s *Session) RollHitDie(ctx context.Context) (*RollHitDieOutput, error) {
	if s.current != nil && s.current.HitDice.Current <= 0 {
		return &RollHitDieOutput{Result: s.unchanged(WarningNoHitDice)}, nil
	}

	var roll engine.HitDieRoll
	result, err := s.apply(ctx, "roll hit die", func(c *entity.Character) (*entity.Character, error) {
		next, r, err := engine.SpendHitDieWithRoll(c, s.roller)
		roll = r
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return &RollHitDieOutput{Result: result, Roll: roll}, nil
}

// SetDeathSaves records death save successes and failures
func (s *Session) SetDeathSaves(ctx context.Context, input *SetDeathSavesInput) (*Result, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}
	return s.apply(ctx, "set death saves", pure(func(c *entity.Character) *entity.Character {
		return engine.SetDeathSaves(c, input.Successes, input.Failures)
	}))
}

// ShortRest refills short-rest features after confirmation
func (s *Session) ShortRest(ctx context.Context) (*Result, error) {
	return s.applyConfirmed(ctx, "short rest", promptShortRest, pure(engine.ShortRest))
}

// LongRest restores hit points, hit dice, slots and features after confirmation
func (s *Session) LongRest(ctx context.Context) (*Result, error) {
	return s.applyConfirmed(ctx, "long rest", promptLongRest, pure(engine.LongRest))
}

// RestoreSpellSlots refills every spell slot after confirmation
func (s *Session) RestoreSpellSlots(ctx context.Context) (*Result, error) {
	return s.applyConfirmed(ctx, "restore spell slots", promptRestoreSlots, pure(engine.RestoreSpellSlots))
}
