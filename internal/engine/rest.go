package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"

// ShortRest refills every feature that recovers on a short rest
func ShortRest(c *sheet.Character) *sheet.Character {
	out := c.Clone()
	refillFeatures(out, sheet.RecoveryShort)
	return out
}

// LongRest restores hit points, clears temporary hit points, recovers half
// the hit dice (at least one), refills every spell slot and every feature
// that recovers on a short or long rest.
func LongRest(c *sheet.Character) *sheet.Character {
	out := c.Clone()

	out.HP.Current = out.HP.Max
	out.HP.Temp = 0

	recovered := max(1, out.HitDice.Total/2)
	out.HitDice.Current = min(out.HitDice.Total, out.HitDice.Current+recovered)

	refillSlots(out)
	refillFeatures(out, sheet.RecoveryShort, sheet.RecoveryLong)

	return out
}

// RestoreSpellSlots refills every spell slot and nothing else
func RestoreSpellSlots(c *sheet.Character) *sheet.Character {
	out := c.Clone()
	refillSlots(out)
	return out
}

func refillSlots(c *sheet.Character) {
	for i := range c.SpellSlots {
		c.SpellSlots[i].Current = c.SpellSlots[i].Total
	}
}

func refillFeatures(c *sheet.Character, triggers ...sheet.Recovery) {
	for i := range c.Features {
		for _, trigger := range triggers {
			if c.Features[i].Recovery == trigger {
				c.Features[i].CurrentUses = c.Features[i].MaxUses
				break
			}
		}
	}
}
