package sheet

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types of the records nested in a Character
const (
	EntityTypeItem     = "item"
	EntityTypeFeature  = "feature"
	EntityTypeSpell    = "spell"
	EntityTypeCreature = "creature"
	EntityTypeNote     = "note"
)

var (
	_ core.Entity = (*Character)(nil)
	_ core.Entity = Item{}
	_ core.Entity = Feature{}
	_ core.Entity = Spell{}
	_ core.Entity = Creature{}
	_ core.Entity = Note{}
)

// GetID returns the item ID
func (i Item) GetID() string { return i.ID }

// GetType is EntityTypeItem for every item kind
func (i Item) GetType() string { return EntityTypeItem }

func (f Feature) GetID() string { return f.ID }
func (f Feature) GetType() string { return EntityTypeFeature }

func (s Spell) GetID() string { return s.ID }
func (s Spell) GetType() string { return EntityTypeSpell }

func (c Creature) GetID() string { return c.ID }

// GetType is EntityTypeCreature; the creature's own kind stays in Type
func (c Creature) GetType() string { return EntityTypeCreature }

func (n Note) GetID() string { return n.ID }
func (n Note) GetType() string { return EntityTypeNote }

// FindEntity looks up a nested record by entity type and ID. The returned
// value is a copy of the element held by c.
func (c *Character) FindEntity(entityType, id string) (core.Entity, bool) {
	switch entityType {
	case EntityTypeItem:
		if i, ok := c.FindItemIndex(id); ok {
			return c.Inventory[i], true
		}
	case EntityTypeFeature:
		if i, ok := c.FindFeatureIndex(id); ok {
			return c.Features[i], true
		}
	case EntityTypeSpell:
		if i, ok := c.FindSpellIndex(id); ok {
			return c.Spells[i], true
		}
	case EntityTypeCreature:
		if i, ok := c.FindCreatureIndex(id); ok {
			return c.Creatures[i], true
		}
	case EntityTypeNote:
		if i, ok := c.FindNoteIndex(id); ok {
			return c.Notes[i], true
		}
	}
	return nil, false
}
