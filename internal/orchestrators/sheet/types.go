package sheet

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Attributes and identity

// SetAttributeInput defines the request for setting an ability score
type SetAttributeInput struct {
	Attribute entity.Attribute
	Value     int
}

// ToggleSaveProficiencyInput defines the request for toggling a saving throw proficiency
type ToggleSaveProficiencyInput struct {
	Attribute entity.Attribute
}

// CycleSkillInput defines the request for cycling a skill proficiency
type CycleSkillInput struct {
	Skill entity.SkillName
}

// SetIdentityInput defines the request for changing identity fields
type SetIdentityInput struct {
	Update engine.IdentityUpdate
}

// SetCombatStatsInput defines the request for changing the stored combat numbers
type SetCombatStatsInput struct {
	Update engine.CombatUpdate
}

// SetBioInput replaces the fields that are not nil
type SetBioInput struct {
	Bio           *string
	CampaignNotes *string
}

// Vitality

// ApplyDamageInput defines the request for taking damage
type ApplyDamageInput struct {
	Amount int
}

// HealInput defines the request for healing
type HealInput struct {
	Amount int
}

// SetTempHPInput defines the request for replacing temporary hit points
type SetTempHPInput struct {
	Amount int
}

// SetMaxHPInput defines the request for changing maximum hit points
type SetMaxHPInput struct {
	Amount int
}

// SetDeathSavesInput defines the request for recording death saves
type SetDeathSavesInput struct {
	Successes int
	Failures  int
}

// RollHitDieOutput is a Result plus the roll that healed
type RollHitDieOutput struct {
	*Result
	Roll engine.HitDieRoll
}

// Inventory and lists

// ConsumeItemInput defines the request for using up one unit of an item
type ConsumeItemInput struct {
	ItemID string
}

// ToggleEquipInput defines the request for equipping or unequipping an item
type ToggleEquipInput struct {
	ItemID string
}

// AddItemInput carries the new item; any ID it has is replaced
type AddItemInput struct {
	Item entity.Item
}

// UpdateItemInput defines the request for replacing an item
type UpdateItemInput struct {
	Item entity.Item
}

// DeleteItemInput defines the request for removing an item
type DeleteItemInput struct {
	ItemID string
}

// SetCurrencyInput defines the request for setting one coin
type SetCurrencyInput struct {
	Denomination engine.Denomination
	Amount       int
}

// AddToListInput defines the request for adding a label to a list
type AddToListInput struct {
	List  engine.ListKey
	Value string
}

// AddLanguageInput adds a language; Range only applies to telepathy
type AddLanguageInput struct {
	Name  string
	Range int
}

// AddSenseInput defines the request for adding a special sense
type AddSenseInput struct {
	Name  string
	Range int
}

// RemoveFromListInput defines the request for removing a list entry by position
type RemoveFromListInput struct {
	List  engine.ListKey
	Index int
}

// Features and magic

// UseFeatureInput defines the request for spending a feature use
type UseFeatureInput struct {
	FeatureID string
}

// RecoverFeatureInput defines the request for restoring a feature use
type RecoverFeatureInput struct {
	FeatureID string
}

// AddFeatureInput defines the request for adding a feature
type AddFeatureInput struct {
	Feature entity.Feature
}

// UpdateFeatureInput defines the request for replacing a feature
type UpdateFeatureInput struct {
	Feature entity.Feature
}

// DeleteFeatureInput defines the request for removing a feature
type DeleteFeatureInput struct {
	FeatureID string
}

// AdjustSpellSlotInput defines the request for moving remaining slots of a level
type AdjustSpellSlotInput struct {
	Level int
	Delta int
}

// SetSpellSlotTotalInput defines the request for changing the slot total of a level
type SetSpellSlotTotalInput struct {
	Level int
	Total int
}

// CastSpellInput defines the request for casting a spell
type CastSpellInput struct {
	SpellID string
}

// SetSpellcastingAttributeInput defines the request for choosing the spellcasting attribute
type SetSpellcastingAttributeInput struct {
	Attribute entity.Attribute
}

// AddSpellInput defines the request for adding a spell
type AddSpellInput struct {
	Spell entity.Spell
}

// UpdateSpellInput defines the request for replacing a spell
type UpdateSpellInput struct {
	Spell entity.Spell
}

// TogglePreparedInput defines the request for preparing or unpreparing a spell
type TogglePreparedInput struct {
	SpellID string
}

// DeleteSpellInput defines the request for removing a spell
type DeleteSpellInput struct {
	SpellID string
}

// Companions and notes

// ChangeCreatureHPInput defines the request for changing a creature's hit points
type ChangeCreatureHPInput struct {
	CreatureID string
	Delta      int
}

// AddCreatureInput carries the new creature; empty fields take the template
type AddCreatureInput struct {
	Creature entity.Creature
}

// UpdateCreatureInput defines the request for replacing a creature
type UpdateCreatureInput struct {
	Creature entity.Creature
}

// DeleteCreatureInput defines the request for removing a creature
type DeleteCreatureInput struct {
	CreatureID string
}

// UpdateNoteInput defines the request for replacing a note
type UpdateNoteInput struct {
	Note entity.Note
}

// DeleteNoteInput defines the request for removing a note
type DeleteNoteInput struct {
	NoteID string
}

// ExportNoteInput defines the request for exporting a note
type ExportNoteInput struct {
	NoteID string
}

// Records

// ImportInput is the raw content of an exported sheet
type ImportInput struct {
	Data []byte
}

// ExportOutput is a file ready to be written
type ExportOutput struct {
	FileName string
	Data     []byte
}

// requireInput rejects a nil operation input
func requireInput[T any](input *T) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	return nil
}
