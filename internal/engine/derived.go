// Package engine implements the character sheet rules: derived values and
// copy-on-write mutations of a sheet.Character.
package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Base values for derived scores
const (
	passiveBase     = 10
	spellSaveDCBase = 8
	carryPerStrPt   = 7.5
)

// AbilityModifier returns floor((score - 10) / 2)
func AbilityModifier(score int) int {
	modifier := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		modifier-- // Go truncates toward zero
	}
	return modifier
}

// ProficiencyBonusForLevel is the standard bonus table: +2 at levels 1-4,
// +1 every four levels after.
func ProficiencyBonusForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return 2 + (level-1)/4
}

// Modifier returns the modifier of one of the character's attributes
func Modifier(c *sheet.Character, attr sheet.Attribute) int {
	return AbilityModifier(c.Attribute(attr).Value)
}

// SkillTotal is the governing modifier plus the scaled proficiency bonus
func SkillTotal(c *sheet.Character, name sheet.SkillName) int {
	skill, ok := c.Skills[name]
	attr := skill.Attribute
	if !ok || !attr.Valid() {
		attr = sheet.SkillAttributes[name]
	}
	return Modifier(c, attr) + c.ProficiencyBonus*skill.Level.Multiplier()
}

// PassiveScore is 10 + the skill total
func PassiveScore(c *sheet.Character, name sheet.SkillName) int {
	return passiveBase + SkillTotal(c, name)
}

// SavingThrow adds the proficiency bonus when the save is proficient
func SavingThrow(c *sheet.Character, attr sheet.Attribute) int {
	stat := c.Attribute(attr)
	total := AbilityModifier(stat.Value)
	if stat.SaveProficiency {
		total += c.ProficiencyBonus
	}
	return total
}

// InitiativeSuggestion is the dexterity modifier
func InitiativeSuggestion(c *sheet.Character) int {
	return Modifier(c, sheet.AttributeDexterity)
}

// SpellcastingAttribute returns the casting attribute, intelligence when unset
func SpellcastingAttribute(c *sheet.Character) sheet.Attribute {
	if c.SpellcastingAttribute.Valid() {
		return c.SpellcastingAttribute
	}
	return sheet.AttributeIntelligence
}

// SpellSaveDC is 8 + proficiency + casting modifier
func SpellSaveDC(c *sheet.Character) int {
	return spellSaveDCBase + c.ProficiencyBonus + Modifier(c, SpellcastingAttribute(c))
}

// SpellAttackBonus is proficiency + casting modifier
func SpellAttackBonus(c *sheet.Character) int {
	return c.ProficiencyBonus + Modifier(c, SpellcastingAttribute(c))
}

// WeaponAttackBonus is strength modifier + proficiency, as shown on weapons
func WeaponAttackBonus(c *sheet.Character) int {
	return Modifier(c, sheet.AttributeStrength) + c.ProficiencyBonus
}

// CarryCapacity is strength x 7.5
func CarryCapacity(c *sheet.Character) float64 {
	return float64(c.Attribute(sheet.AttributeStrength).Value) * carryPerStrPt
}

// CurrentLoad sums weight x quantity over the inventory
func CurrentLoad(c *sheet.Character) float64 {
	var load float64
	for _, item := range c.Inventory {
		load += item.Weight * float64(item.Quantity)
	}
	return load
}

// IsEncumbered reports load above capacity
func IsEncumbered(c *sheet.Character) bool {
	return CurrentLoad(c) > CarryCapacity(c)
}

// LoadPercent is load over capacity, clamped to [0,100]
func LoadPercent(c *sheet.Character) float64 {
	return percent(CurrentLoad(c), CarryCapacity(c))
}

// HPPercent is current over max, clamped to [0,100]
func HPPercent(c *sheet.Character) float64 {
	return percent(float64(c.HP.Current), float64(c.HP.Max))
}

// TempHPPercent is temp over max, clamped to [0,100]
func TempHPPercent(c *sheet.Character) float64 {
	return percent(float64(c.HP.Temp), float64(c.HP.Max))
}

func percent(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return clampFloat(value/total*100, 0, 100)
}

// FormatModifier renders a signed modifier: +2, -1, +0
func FormatModifier(n int) string {
	if n >= 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

// AttributeSummary is one row of the attribute block
type AttributeSummary struct {
	Value    int  `json:"value" yaml:"value"`
	Modifier int  `json:"modifier" yaml:"modifier"`
	Save     int  `json:"save" yaml:"save"`
	SaveProf bool `json:"saveProficiency" yaml:"saveProficiency"`
}

// Derived collects every computed value of a sheet
type Derived struct {
	Attributes            map[sheet.Attribute]AttributeSummary `json:"attributes" yaml:"attributes"`
	Skills                map[sheet.SkillName]int              `json:"skills" yaml:"skills"`
	PassivePerception     int                                  `json:"passivePerception" yaml:"passivePerception"`
	PassiveInvestigation  int                                  `json:"passiveInvestigation" yaml:"passiveInvestigation"`
	InitiativeSuggestion  int                                  `json:"initiativeSuggestion" yaml:"initiativeSuggestion"`
	SpellcastingAttribute sheet.Attribute                      `json:"spellcastingAttribute" yaml:"spellcastingAttribute"`
	SpellSaveDC           int                                  `json:"spellSaveDC" yaml:"spellSaveDC"`
	SpellAttackBonus      int                                  `json:"spellAttackBonus" yaml:"spellAttackBonus"`
	WeaponAttackBonus     int                                  `json:"weaponAttackBonus" yaml:"weaponAttackBonus"`
	CarryCapacity         float64                              `json:"carryCapacity" yaml:"carryCapacity"`
	CurrentLoad           float64                              `json:"currentLoad" yaml:"currentLoad"`
	LoadPercent           float64                              `json:"loadPercent" yaml:"loadPercent"`
	Encumbered            bool                                 `json:"encumbered" yaml:"encumbered"`
	HPPercent             float64                              `json:"hpPercent" yaml:"hpPercent"`
	TempHPPercent         float64                              `json:"tempHpPercent" yaml:"tempHpPercent"`
}

// Derive computes every derived value at once
func Derive(c *sheet.Character) *Derived {
	d := &Derived{
		Attributes:            make(map[sheet.Attribute]AttributeSummary, len(sheet.Attributes)),
		Skills:                make(map[sheet.SkillName]int, len(sheet.SkillAttributes)),
		PassivePerception:     PassiveScore(c, sheet.SkillPerception),
		PassiveInvestigation:  PassiveScore(c, sheet.SkillInvestigation),
		InitiativeSuggestion:  InitiativeSuggestion(c),
		SpellcastingAttribute: SpellcastingAttribute(c),
		SpellSaveDC:           SpellSaveDC(c),
		SpellAttackBonus:      SpellAttackBonus(c),
		WeaponAttackBonus:     WeaponAttackBonus(c),
		CarryCapacity:         CarryCapacity(c),
		CurrentLoad:           CurrentLoad(c),
		LoadPercent:           LoadPercent(c),
		Encumbered:            IsEncumbered(c),
		HPPercent:             HPPercent(c),
		TempHPPercent:         TempHPPercent(c),
	}

	for _, attr := range sheet.Attributes {
		stat := c.Attribute(attr)
		d.Attributes[attr] = AttributeSummary{
			Value:    stat.Value,
			Modifier: AbilityModifier(stat.Value),
			Save:     SavingThrow(c, attr),
			SaveProf: stat.SaveProficiency,
		}
	}
	for name := range sheet.SkillAttributes {
		d.Skills[name] = SkillTotal(c, name)
	}

	return d
}
