package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// CastOutcome reports what casting a spell did
type CastOutcome string

// Cast outcomes
const (
	CastCantrip  CastOutcome = "cantrip"
	CastConsumed CastOutcome = "consumed"
	CastNoSlot   CastOutcome = "no_slot"
)

// AdjustSpellSlot moves the remaining slots of a level by delta, clamped to [0,total]
func AdjustSpellSlot(c *sheet.Character, level, delta int) (*sheet.Character, error) {
	out := c.Clone()
	idx, err := slotIndex(out, level)
	if err != nil {
		return nil, err
	}

	slot := &out.SpellSlots[idx]
	slot.Current = clamp(slot.Current+delta, 0, slot.Total)
	return out, nil
}

// SetSpellSlotTotal changes the capacity of a level; remaining slots are
// trimmed to fit.
func SetSpellSlotTotal(c *sheet.Character, level, total int) (*sheet.Character, error) {
	out := c.Clone()
	idx, err := slotIndex(out, level)
	if err != nil {
		return nil, err
	}

	slot := &out.SpellSlots[idx]
	slot.Total = max(0, total)
	slot.Current = clamp(slot.Current, 0, slot.Total)
	return out, nil
}

// CastSpell consumes a slot of the spell's level. Cantrips are free; with no
// slot left the record is unchanged and CastNoSlot is reported.
func CastSpell(c *sheet.Character, id string) (*sheet.Character, CastOutcome, error) {
	idx, ok := c.FindSpellIndex(id)
	if !ok {
		return nil, "", errors.NotFoundf("spell %s not found", id)
	}

	spell := c.Spells[idx]
	if spell.Level == 0 {
		return c.Clone(), CastCantrip, nil
	}

	slotIdx, ok := c.SpellSlot(spell.Level)
	if !ok || c.SpellSlots[slotIdx].Current <= 0 {
		return c.Clone(), CastNoSlot, nil
	}

	out, err := AdjustSpellSlot(c, spell.Level, -1)
	if err != nil {
		return nil, "", err
	}
	return out, CastConsumed, nil
}

// CanCast reports whether casting the spell would succeed
func CanCast(c *sheet.Character, spell sheet.Spell) bool {
	if spell.Level == 0 {
		return true
	}
	idx, ok := c.SpellSlot(spell.Level)
	return ok && c.SpellSlots[idx].Current > 0
}

// SetSpellcastingAttribute chooses the attribute behind spell DC and attack
func SetSpellcastingAttribute(c *sheet.Character, attr sheet.Attribute) (*sheet.Character, error) {
	if !attr.Valid() {
		return nil, errors.InvalidArgumentf("unknown attribute %q", attr)
	}

	out := c.Clone()
	out.SpellcastingAttribute = attr
	return out, nil
}

// AddSpell appends a new spell. The caller assigns the ID.
func AddSpell(c *sheet.Character, s sheet.Spell) (*sheet.Character, error) {
	if err := validateNew("spell", s.ID, s.Name); err != nil {
		return nil, err
	}
	if err := validateSpellLevel(s.Level); err != nil {
		return nil, err
	}
	if _, exists := c.FindSpellIndex(s.ID); exists {
		return nil, errors.InvalidArgumentf("spell %s already exists", s.ID)
	}

	out := c.Clone()
	out.Spells = append(out.Spells, s.Clone())
	return out, nil
}

// UpdateSpell replaces the spell with the same ID
func UpdateSpell(c *sheet.Character, s sheet.Spell) (*sheet.Character, error) {
	if err := validateName("spell", s.Name); err != nil {
		return nil, err
	}
	if err := validateSpellLevel(s.Level); err != nil {
		return nil, err
	}

	out := c.Clone()
	idx, ok := out.FindSpellIndex(s.ID)
	if !ok {
		return nil, errors.NotFoundf("spell %s not found", s.ID)
	}

	out.Spells[idx] = s.Clone()
	return out, nil
}

// TogglePrepared flips whether a spell is prepared
func TogglePrepared(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindSpellIndex(id)
	if !ok {
		return nil, errors.NotFoundf("spell %s not found", id)
	}

	out.Spells[idx].Prepared = !out.Spells[idx].Prepared
	return out, nil
}

// DeleteSpell removes a spell by ID
func DeleteSpell(c *sheet.Character, id string) (*sheet.Character, error) {
	out := c.Clone()
	idx, ok := out.FindSpellIndex(id)
	if !ok {
		return nil, errors.NotFoundf("spell %s not found", id)
	}

	out.Spells = deleteAt(out.Spells, idx)
	return out, nil
}

func slotIndex(c *sheet.Character, level int) (int, error) {
	if level < 1 || level > sheet.MaxSpellLevel {
		return -1, errors.InvalidArgumentf("spell slot level must be between 1 and %d, got %d", sheet.MaxSpellLevel, level)
	}
	idx, ok := c.SpellSlot(level)
	if !ok {
		return -1, errors.NotFoundf("no spell slot entry for level %d", level)
	}
	return idx, nil
}

func validateSpellLevel(level int) error {
	if level < 0 || level > sheet.MaxSpellLevel {
		return errors.InvalidArgumentf("spell level must be between 0 and %d, got %d", sheet.MaxSpellLevel, level)
	}
	return nil
}
