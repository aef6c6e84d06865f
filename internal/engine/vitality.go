package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// ApplyDamage drains temporary hit points first, then current hit points,
// never going below zero. Non-positive amounts change nothing.
func ApplyDamage(c *sheet.Character, amount int) *sheet.Character {
	out := c.Clone()
	if amount <= 0 {
		return out
	}

	absorbed := min(amount, max(out.HP.Temp, 0))
	out.HP.Temp -= absorbed
	out.HP.Current = max(0, out.HP.Current-(amount-absorbed))

	return out
}

// Heal raises current hit points up to max; temporary hit points are untouched
func Heal(c *sheet.Character, amount int) *sheet.Character {
	out := c.Clone()
	if amount <= 0 {
		return out
	}

	out.HP.Current = min(out.HP.Max, out.HP.Current+amount)
	return out
}

// SetTempHP overwrites temporary hit points, floored at zero
func SetTempHP(c *sheet.Character, amount int) *sheet.Character {
	out := c.Clone()
	out.HP.Temp = max(0, amount)
	return out
}

// SetMaxHP sets the hit point maximum. Current is left alone.
func SetMaxHP(c *sheet.Character, amount int) *sheet.Character {
	out := c.Clone()
	out.HP.Max = max(0, amount)
	return out
}

// SpendHitDie removes one hit die, if any remain
func SpendHitDie(c *sheet.Character) *sheet.Character {
	out := c.Clone()
	if out.HitDice.Current > 0 {
		out.HitDice.Current--
	}
	return out
}

// RecoverHitDie returns one hit die, up to the total
func RecoverHitDie(c *sheet.Character) *sheet.Character {
	out := c.Clone()
	if out.HitDice.Current < out.HitDice.Total {
		out.HitDice.Current++
	}
	return out
}

// HitDieRoll describes the healing from one spent hit die
type HitDieRoll struct {
	Spent    bool `json:"spent"`
	Rolled   int  `json:"rolled"`
	Modifier int  `json:"modifier"`
	Healed   int  `json:"healed"`
}

// SpendHitDieWithRoll spends one hit die and heals by the roll plus the
// constitution modifier, minimum zero. With no dice left nothing changes.
func SpendHitDieWithRoll(c *sheet.Character, roller dice.Roller) (*sheet.Character, HitDieRoll, error) {
	if roller == nil {
		return nil, HitDieRoll{}, errors.InvalidArgument("dice roller is required")
	}
	if c.HitDice.Current <= 0 {
		return c.Clone(), HitDieRoll{}, nil
	}

	face := c.HitDice.Face
	if face <= 0 {
		return nil, HitDieRoll{}, errors.FailedPreconditionf("hit die face must be positive, got %d", face)
	}

	rolled, err := roller.Roll(face)
	if err != nil {
		return nil, HitDieRoll{}, errors.Wrapf(err, "failed to roll d%d", face)
	}

	result := HitDieRoll{
		Spent:    true,
		Rolled:   rolled,
		Modifier: Modifier(c, sheet.AttributeConstitution),
	}
	result.Healed = max(0, result.Rolled+result.Modifier)

	out := Heal(SpendHitDie(c), result.Healed)
	return out, result, nil
}

// SetDeathSaves sets both death save counters, each clamped to [0,3]
func SetDeathSaves(c *sheet.Character, successes, failures int) *sheet.Character {
	out := c.Clone()
	out.DeathSaves.Successes = clamp(successes, 0, sheet.MaxDeathSaves)
	out.DeathSaves.Failures = clamp(failures, 0, sheet.MaxDeathSaves)
	return out
}
