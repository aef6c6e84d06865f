// Package sheet holds the character record edited by the sheet engine
package sheet

// EntityType is the rpg-toolkit entity type reported by a Character
const EntityType = "character_sheet"

// Character is the single record behind a character sheet.
// NOTE: This is a data-only struct. Derived values and mutations live in
// internal/engine; nothing here enforces the soft caps (hp.current <= hp.max etc.).
type Character struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Race       string `json:"race"`
	Class      string `json:"class"`
	Level      int    `json:"level"`
	Background string `json:"background"`
	Alignment  string `json:"alignment"`
	XP         int    `json:"xp"`

	Attributes map[Attribute]AttributeStat `json:"attributes"`
	Skills     map[SkillName]Skill         `json:"skills"`

	HP         HitPoints  `json:"hp"`
	HitDice    HitDice    `json:"hitDice"`
	DeathSaves DeathSaves `json:"deathSaves"`

	ArmorClass       int   `json:"armorClass"`
	Initiative       int   `json:"initiative"`
	Speed            Speed `json:"speed"`
	ProficiencyBonus int   `json:"proficiencyBonus"`

	ActiveConditions []string `json:"activeConditions"`
	Resistances      []string `json:"resistances"`
	Immunities       []string `json:"immunities"`
	Vulnerabilities  []string `json:"vulnerabilities"`

	ArmorProficiencies  []string   `json:"armorProficiencies"`
	WeaponProficiencies []string   `json:"weaponProficiencies"`
	Languages           []Language `json:"languages"`
	Senses              []Sense    `json:"senses"`

	Inventory []Item   `json:"inventory"`
	Currency  Currency `json:"currency"`

	SpellcastingAttribute Attribute   `json:"spellcastingAttribute"`
	Features              []Feature   `json:"features"`
	Spells                []Spell     `json:"spells"`
	SpellSlots            []SpellSlot `json:"spellSlots"`
	Creatures             []Creature  `json:"creatures"`
	Notes                 []Note      `json:"notes"`

	Bio           string `json:"bio"`
	CampaignNotes string `json:"campaignNotes"`
}

// GetID returns the record ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityType
}

// Attribute returns the stat for an attribute, zero value when missing
func (c *Character) Attribute(attr Attribute) AttributeStat {
	return c.Attributes[attr]
}

// SpellSlot returns the index of the slot for a spell level
func (c *Character) SpellSlot(level int) (int, bool) {
	for i := range c.SpellSlots {
		if c.SpellSlots[i].Level == level {
			return i, true
		}
	}
	return -1, false
}

// FindItemIndex finds an inventory item by ID
func (c *Character) FindItemIndex(id string) (int, bool) {
	for i := range c.Inventory {
		if c.Inventory[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindFeatureIndex finds a feature by ID
func (c *Character) FindFeatureIndex(id string) (int, bool) {
	for i := range c.Features {
		if c.Features[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindSpellIndex finds a spell by ID
func (c *Character) FindSpellIndex(id string) (int, bool) {
	for i := range c.Spells {
		if c.Spells[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindCreatureIndex finds a creature by ID
func (c *Character) FindCreatureIndex(id string) (int, bool) {
	for i := range c.Creatures {
		if c.Creatures[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindNoteIndex finds a note by ID
func (c *Character) FindNoteIndex(id string) (int, bool) {
	for i := range c.Notes {
		if c.Notes[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
