package testutils

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Fixture IDs shared by tests
const (
	TestItemID     = "item-test-001"
	TestFeatureID  = "feat-test-001"
	TestSpellID    = "spell-test-001"
	TestCantripID  = "spell-test-000"
	TestCreatureID = "creature-test-001"
	TestNoteID     = "note-test-001"
)

// TestSword is an equipped weapon
func TestSword() sheet.Item {
	return sheet.Item{
		ID:       TestItemID,
		Name:     "Espada Curta",
		Type:     sheet.ItemTypeWeapon,
		Rarity:   sheet.RarityCommon,
		Quantity: 1,
		Weight:   1,
		Equipped: true,
		Damage:   "1d6 Perfurante",
	}
}

// TestPotion is a stack of consumables
func TestPotion(quantity int) sheet.Item {
	return sheet.Item{
		ID:       "item-test-potion",
		Name:     "Poção de Cura",
		Type:     sheet.ItemTypeConsumable,
		Rarity:   sheet.RarityCommon,
		Quantity: quantity,
		Weight:   0.5,
	}
}

// TestActiveFeature is a limited-use feature recovering on the given rest
func TestActiveFeature(current, maxUses int, recovery sheet.Recovery) sheet.Feature {
	return sheet.Feature{
		ID:          TestFeatureID,
		Name:        "Surto de Ação",
		Source:      sheet.SourceClass,
		Type:        sheet.FeatureTypeActive,
		MaxUses:     maxUses,
		CurrentUses: current,
		Recovery:    recovery,
		ActionType:  sheet.ActionTypeOther,
	}
}

// TestSpell is a first level spell
func TestSpell() sheet.Spell {
	return sheet.Spell{
		ID:          TestSpellID,
		Name:        "Mísseis Mágicos",
		Level:       1,
		School:      "Evocação",
		CastingTime: "1 ação",
		Range:       "36m",
		Components:  "V, S",
		Duration:    "Instantânea",
		Prepared:    true,
	}
}

// TestCantrip is a level 0 spell
func TestCantrip() sheet.Spell {
	return sheet.Spell{
		ID:       TestCantripID,
		Name:     "Raio de Fogo",
		Level:    0,
		School:   "Evocação",
		Prepared: true,
	}
}

// TestWolf is a companion creature
func TestWolf() sheet.Creature {
	return sheet.Creature{
		ID:    TestCreatureID,
		Name:  "Lobo",
		Type:  "Besta",
		HP:    sheet.CreatureHP{Current: 11, Max: 11},
		AC:    13,
		Speed: "12m",
		Stats: sheet.CreatureStats{Str: 12, Dex: 15, Con: 12, Int: 3, Wis: 12, Cha: 6},
		Attacks: []sheet.CreatureAttack{
			{Name: "Mordida", Bonus: "+4", Damage: "2d4+2", Type: "Perfurante"},
		},
	}
}
