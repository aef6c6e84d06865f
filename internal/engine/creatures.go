package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// ChangeCreatureHP moves a creature's hit points by delta within [0,max]
func ChangeCreatureHP(c *sheet.Character, id string, delta int) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindCreatureIndex(id)
	if !ok {
		return nil, errors.NotFoundf("creature %s not found", id)
	}

	hp := &out.Creatures[idx].HP
	hp.Current = clamp(hp.Current+delta, 0, max(0, hp.Max))
	return out, nil
}

// AddCreature appends a new creature. The caller assigns the ID.
func AddCreature(c *sheet.Character, cr sheet.Creature) (*sheet.Character, error) {
	if err := validateNew("creature", cr.ID, cr.Name); err != nil {
		return nil, err
	}
	if _, exists := c.FindCreatureIndex(cr.ID); exists {
		return nil, errors.InvalidArgumentf("creature %s already exists", cr.ID)
	}

	out := c.Clone()
	out.Creatures = append(out.Creatures, cr.Clone())
	return out, nil
}

// UpdateCreature replaces the creature with the same ID
func UpdateCreature(c *sheet.Character, cr sheet.Creature) (*sheet.Character, error) {
	if err := validateName("creature", cr.Name); err != nil {
		return nil, err
	}

	out := c.Clone()
	idx, ok := out.FindCreatureIndex(cr.ID)
	if !ok {
		return nil, errors.NotFoundf("creature %s not found", cr.ID)
	}

	out.Creatures[idx] = cr.Clone()
	return out, nil
}

// DeleteCreature removes a creature by ID
func DeleteCreature(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindCreatureIndex(id)
	if !ok {
		return nil, errors.NotFoundf("creature %s not found", id)
	}

	out.Creatures = deleteAt(out.Creatures, idx)
	return out, nil
}

// NewCreature returns the template a new companion starts from
func NewCreature(id, name string) sheet.Creature {
	return sheet.Creature{
		ID:      id,
		Name:    name,
		Type:    "Besta",
		HP:      sheet.CreatureHP{Current: 10, Max: 10},
		AC:      10,
		Speed:   "9m",
		Stats:   sheet.CreatureStats{Str: 10, Dex: 10, Con: 10, Int: 10, Wis: 10, Cha: 10},
		Attacks: []sheet.CreatureAttack{},
	}
}
