package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// SetAttribute sets an ability score, clamped to [1,30]
func SetAttribute(c *sheet.Character, attr sheet.Attribute, value int) (*sheet.Character, error) {
	if !attr.Valid() {
		return nil, errors.InvalidArgumentf("unknown attribute %q", attr)
	}

	out := c.Clone()
	if out.Attributes == nil {
		out.Attributes = make(map[sheet.Attribute]sheet.AttributeStat, len(sheet.Attributes))
	}
	stat := out.Attributes[attr]
	stat.Value = clamp(value, sheet.MinAbilityScore, sheet.MaxAbilityScore)
	out.Attributes[attr] = stat
	return out, nil
}

// ToggleSaveProficiency flips proficiency in an attribute's saving throw
func ToggleSaveProficiency(c *sheet.Character, attr sheet.Attribute) (*sheet.Character, error) {
	if !attr.Valid() {
		return nil, errors.InvalidArgumentf("unknown attribute %q", attr)
	}

	out := c.Clone()
	if out.Attributes == nil {
		out.Attributes = make(map[sheet.Attribute]sheet.AttributeStat, len(sheet.Attributes))
	}
	stat := out.Attributes[attr]
	stat.SaveProficiency = !stat.SaveProficiency
	out.Attributes[attr] = stat
	return out, nil
}

// CycleSkill advances a skill none -> proficient -> expert -> none
func CycleSkill(c *sheet.Character, name sheet.SkillName) (*sheet.Character, error) {
	attr, known := sheet.SkillAttributes[name]
	if !known {
		return nil, errors.InvalidArgumentf("unknown skill %q", name)
	}

	out := c.Clone()
	if out.Skills == nil {
		out.Skills = make(map[sheet.SkillName]sheet.Skill, len(sheet.SkillAttributes))
	}
	skill, ok := out.Skills[name]
	if !ok {
		skill = sheet.Skill{Level: sheet.ProficiencyNone, Attribute: attr}
	}
	skill.Level = skill.Level.Next()
	out.Skills[name] = skill
	return out, nil
}

// IdentityUpdate carries the identity fields to change; nil fields are kept
type IdentityUpdate struct {
	Name       *string
	Race       *string
	Class      *string
	Level      *int
	Background *string
	Alignment  *string
	XP         *int
}

// SetIdentity applies an IdentityUpdate. Level is at least 1 and XP at least 0.
func SetIdentity(c *sheet.Character, update IdentityUpdate) *sheet.Character {
	out := c.Clone()
	setIf(&out.Name, update.Name)
	setIf(&out.Race, update.Race)
	setIf(&out.Class, update.Class)
	setIf(&out.Background, update.Background)
	setIf(&out.Alignment, update.Alignment)
	if update.Level != nil {
		out.Level = max(1, *update.Level)
	}
	if update.XP != nil {
		out.XP = max(0, *update.XP)
	}
	return out
}

// CombatUpdate carries the stored combat numbers to change; nil fields are kept
type CombatUpdate struct {
	ArmorClass       *int
	Initiative       *int
	Speed            *float64
	ProficiencyBonus *int
	HitDiceTotal     *int
	HitDiceFace      *int
}

// SetCombatStats applies a CombatUpdate. Hit dice are kept within the new total.
func SetCombatStats(c *sheet.Character, update CombatUpdate) *sheet.Character {
	out := c.Clone()
	setIf(&out.ArmorClass, update.ArmorClass)
	setIf(&out.Initiative, update.Initiative)
	setIf(&out.ProficiencyBonus, update.ProficiencyBonus)
	if update.Speed != nil {
		out.Speed = sheet.Speed(max(0, *update.Speed))
	}
	if update.HitDiceTotal != nil {
		out.HitDice.Total = max(0, *update.HitDiceTotal)
		out.HitDice.Current = clamp(out.HitDice.Current, 0, out.HitDice.Total)
	}
	if update.HitDiceFace != nil {
		out.HitDice.Face = max(1, *update.HitDiceFace)
	}
	return out
}

// SetBio replaces the free text biography and campaign notes
func SetBio(c *sheet.Character, bio, campaignNotes *string) *sheet.Character {
	out := c.Clone()
	setIf(&out.Bio, bio)
	setIf(&out.CampaignNotes, campaignNotes)
	return out
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
