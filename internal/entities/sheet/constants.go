package sheet

// Attribute names one of the six ability scores
type Attribute string

// Attribute constants
const (
	AttributeStrength     Attribute = "strength"
	AttributeDexterity    Attribute = "dexterity"
	AttributeConstitution Attribute = "constitution"
	AttributeIntelligence Attribute = "intelligence"
	AttributeWisdom       Attribute = "wisdom"
	AttributeCharisma     Attribute = "charisma"
)

// Attributes lists the ability scores in sheet order
var Attributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

// Valid reports whether a is one of the six ability scores
func (a Attribute) Valid() bool {
	for _, attr := range Attributes {
		if a == attr {
			return true
		}
	}
	return false
}

// ProficiencyLevel is a skill training tier
type ProficiencyLevel string

// Proficiency levels
const (
	ProficiencyNone       ProficiencyLevel = "none"
	ProficiencyProficient ProficiencyLevel = "proficient"
	ProficiencyExpert     ProficiencyLevel = "expert"
)

// Next cycles none -> proficient -> expert -> none. Unknown levels count as none.
func (p ProficiencyLevel) Next() ProficiencyLevel {
	switch p {
	case ProficiencyProficient:
		return ProficiencyExpert
	case ProficiencyExpert:
		return ProficiencyNone
	default:
		return ProficiencyProficient
	}
}

// Multiplier is the proficiency bonus multiplier for this level
func (p ProficiencyLevel) Multiplier() int {
	switch p {
	case ProficiencyProficient:
		return 1
	case ProficiencyExpert:
		return 2
	default:
		return 0
	}
}

// SkillName names one of the eighteen skills
type SkillName string

// Skill constants
const (
	SkillAcrobatics     SkillName = "acrobatics"
	SkillAnimalHandling SkillName = "animal_handling"
	SkillArcana         SkillName = "arcana"
	SkillAthletics      SkillName = "athletics"
	SkillDeception      SkillName = "deception"
	SkillHistory        SkillName = "history"
	SkillInsight        SkillName = "insight"
	SkillIntimidation   SkillName = "intimidation"
	SkillInvestigation  SkillName = "investigation"
	SkillMedicine       SkillName = "medicine"
	SkillNature         SkillName = "nature"
	SkillPerception     SkillName = "perception"
	SkillPerformance    SkillName = "performance"
	SkillPersuasion     SkillName = "persuasion"
	SkillReligion       SkillName = "religion"
	SkillSleightOfHand  SkillName = "sleight_of_hand"
	SkillStealth        SkillName = "stealth"
	SkillSurvival       SkillName = "survival"
)

// SkillAttributes maps every skill to its governing attribute
var SkillAttributes = map[SkillName]Attribute{
	SkillAcrobatics:     AttributeDexterity,
	SkillAnimalHandling: AttributeWisdom,
	SkillArcana:         AttributeIntelligence,
	SkillAthletics:      AttributeStrength,
	SkillDeception:      AttributeCharisma,
	SkillHistory:        AttributeIntelligence,
	SkillInsight:        AttributeWisdom,
	SkillIntimidation:   AttributeCharisma,
	SkillInvestigation:  AttributeIntelligence,
	SkillMedicine:       AttributeWisdom,
	SkillNature:         AttributeIntelligence,
	SkillPerception:     AttributeWisdom,
	SkillPerformance:    AttributeCharisma,
	SkillPersuasion:     AttributeCharisma,
	SkillReligion:       AttributeIntelligence,
	SkillSleightOfHand:  AttributeDexterity,
	SkillStealth:        AttributeDexterity,
	SkillSurvival:       AttributeWisdom,
}

// ItemType tags an inventory item
type ItemType string

// Item types
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeGear       ItemType = "gear"
	ItemTypeTool       ItemType = "tool"
	ItemTypeLoot       ItemType = "loot"
	ItemTypeOther      ItemType = "other"
)

// Rarity is an item's rarity tier
type Rarity string

// Rarity tiers
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityVeryRare  Rarity = "very_rare"
	RarityLegendary Rarity = "legendary"
	RarityArtifact  Rarity = "artifact"
)

// EffectType is what an Effect modifies
type EffectType string

// Effect types
const (
	EffectTypeAC        EffectType = "ac"
	EffectTypeAttribute EffectType = "attribute"
	EffectTypeDamage    EffectType = "damage"
	EffectTypeSave      EffectType = "save"
	EffectTypeSkill     EffectType = "skill"
	EffectTypeSpeed     EffectType = "speed"
	EffectTypeOther     EffectType = "other"
)

// NeedsTarget reports whether effects of this type must name a target
func (t EffectType) NeedsTarget() bool {
	return t == EffectTypeAttribute || t == EffectTypeSkill || t == EffectTypeSave
}

// ActionType is the action economy cost of using something
type ActionType string

// Action types
const (
	ActionTypeAction   ActionType = "action"
	ActionTypeBonus    ActionType = "bonus"
	ActionTypeReaction ActionType = "reaction"
	ActionTypeOther    ActionType = "other"
	ActionTypeNone     ActionType = "none"
)

// FeatureType separates always-on traits from limited-use ones
type FeatureType string

// Feature types
const (
	FeatureTypePassive FeatureType = "passive"
	FeatureTypeActive  FeatureType = "active"
)

// Recovery is the rest that refills a feature's uses
type Recovery string

// Recovery triggers; RecoveryNone means manual recovery only
const (
	RecoveryShort Recovery = "short"
	RecoveryLong  Recovery = "long"
	RecoveryNone  Recovery = "none"
)

// Feature source categories used for grouping
const (
	SourceClass      = "Classe"
	SourceRace       = "Raça"
	SourceFeat       = "Talento"
	SourceBackground = "Antecedente"
	SourceOther      = "Outro"
)

// SourceCategories lists the feature groups in display order
var SourceCategories = []string{SourceClass, SourceRace, SourceFeat, SourceBackground, SourceOther}

// TelepathyLanguage is the language whose range is tracked
const TelepathyLanguage = "Telepatia"

// Defaults applied when an entry is added without a range
const (
	DefaultTelepathyRange = 30
	DefaultSenseRange     = 60
)

// MaxSpellLevel is the highest spell slot level
const MaxSpellLevel = 9

// Ability score bounds
const (
	MinAbilityScore = 1
	MaxAbilityScore = 30
)

// MaxDeathSaves is the cap for successes and failures
const MaxDeathSaves = 3
