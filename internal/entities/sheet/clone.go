package sheet

import (
	"maps"
	"slices"
)

// Clone returns a deep copy. Nil and empty slices keep their distinction so a
// cloned record serializes exactly like the original.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	out.Attributes = maps.Clone(c.Attributes)
	out.Skills = maps.Clone(c.Skills)

	out.ActiveConditions = slices.Clone(c.ActiveConditions)
	out.Resistances = slices.Clone(c.Resistances)
	out.Immunities = slices.Clone(c.Immunities)
	out.Vulnerabilities = slices.Clone(c.Vulnerabilities)
	out.ArmorProficiencies = slices.Clone(c.ArmorProficiencies)
	out.WeaponProficiencies = slices.Clone(c.WeaponProficiencies)
	out.Languages = slices.Clone(c.Languages)
	out.Senses = slices.Clone(c.Senses)
	out.SpellSlots = slices.Clone(c.SpellSlots)

	out.Inventory = cloneEach(c.Inventory, Item.Clone)
	out.Features = cloneEach(c.Features, Feature.Clone)
	out.Spells = cloneEach(c.Spells, Spell.Clone)
	out.Creatures = cloneEach(c.Creatures, Creature.Clone)
	out.Notes = cloneEach(c.Notes, Note.Clone)

	return &out
}

func cloneEach[T any](in []T, fn func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Clone returns a copy that shares no slices with i
func (i Item) Clone() Item {
	i.Effects = slices.Clone(i.Effects)
	i.Properties = slices.Clone(i.Properties)
	return i
}

// Clone returns a copy that shares no slices with f
func (f Feature) Clone() Feature {
	f.Effects = slices.Clone(f.Effects)
	return f
}

// Clone returns a copy that shares no slices with s
func (s Spell) Clone() Spell {
	s.Effects = slices.Clone(s.Effects)
	return s
}

// Clone returns a copy that shares no slices with c
func (c Creature) Clone() Creature {
	c.Attacks = slices.Clone(c.Attacks)
	return c
}

// Clone returns a copy that shares no slices with n
func (n Note) Clone() Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}
