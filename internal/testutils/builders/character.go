// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// CharacterBuilder provides a fluent interface for building test sheets.
// It starts from the blank template so tests only state what they need.
type CharacterBuilder struct {
	c *sheet.Character
}

// NewCharacterBuilder creates a builder over the blank template
func NewCharacterBuilder() *CharacterBuilder {
	c := sheet.Blank()
	c.ID = "char-test-001"
	return &CharacterBuilder{c: c}
}

// FromDefault starts from the default level 1 fighter instead
func FromDefault() *CharacterBuilder {
	return &CharacterBuilder{c: sheet.Default()}
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.c.Name = name
	return b
}

// WithLevel sets the character level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.c.Level = level
	return b
}

// WithAttribute sets one ability score
func (b *CharacterBuilder) WithAttribute(attr sheet.Attribute, value int) *CharacterBuilder {
	stat := b.c.Attributes[attr]
	stat.Value = value
	b.c.Attributes[attr] = stat
	return b
}

// WithSaveProficiency marks a saving throw as proficient
func (b *CharacterBuilder) WithSaveProficiency(attr sheet.Attribute) *CharacterBuilder {
	stat := b.c.Attributes[attr]
	stat.SaveProficiency = true
	b.c.Attributes[attr] = stat
	return b
}

// WithSkill sets a skill's proficiency level
func (b *CharacterBuilder) WithSkill(name sheet.SkillName, level sheet.ProficiencyLevel) *CharacterBuilder {
	skill := b.c.Skills[name]
	skill.Level = level
	b.c.Skills[name] = skill
	return b
}

// WithProficiencyBonus sets the stored proficiency bonus
func (b *CharacterBuilder) WithProficiencyBonus(bonus int) *CharacterBuilder {
	b.c.ProficiencyBonus = bonus
	return b
}

// WithHP sets current, max and temporary hit points
func (b *CharacterBuilder) WithHP(current, maxHP, temp int) *CharacterBuilder {
	b.c.HP = sheet.HitPoints{Current: current, Max: maxHP, Temp: temp}
	return b
}

// WithHitDice sets the hit dice pool
func (b *CharacterBuilder) WithHitDice(current, total, face int) *CharacterBuilder {
	b.c.HitDice = sheet.HitDice{Current: current, Total: total, Face: face}
	return b
}

// WithSpellSlot sets the total and remaining slots of one level
func (b *CharacterBuilder) WithSpellSlot(level, current, total int) *CharacterBuilder {
	for i := range b.c.SpellSlots {
		if b.c.SpellSlots[i].Level == level {
			b.c.SpellSlots[i] = sheet.SpellSlot{Level: level, Total: total, Current: current}
		}
	}
	return b
}

// WithItem appends an inventory item
func (b *CharacterBuilder) WithItem(item sheet.Item) *CharacterBuilder {
	b.c.Inventory = append(b.c.Inventory, item)
	return b
}

// WithFeature appends a feature
func (b *CharacterBuilder) WithFeature(f sheet.Feature) *CharacterBuilder {
	b.c.Features = append(b.c.Features, f)
	return b
}

// WithSpell appends a spell
func (b *CharacterBuilder) WithSpell(s sheet.Spell) *CharacterBuilder {
	b.c.Spells = append(b.c.Spells, s)
	return b
}

// WithCreature appends a creature
func (b *CharacterBuilder) WithCreature(cr sheet.Creature) *CharacterBuilder {
	b.c.Creatures = append(b.c.Creatures, cr)
	return b
}

// WithNote appends a note
func (b *CharacterBuilder) WithNote(n sheet.Note) *CharacterBuilder {
	b.c.Notes = append(b.c.Notes, n)
	return b
}

// Build returns a copy of the built sheet
func (b *CharacterBuilder) Build() *sheet.Character {
	return b.c.Clone()
}
