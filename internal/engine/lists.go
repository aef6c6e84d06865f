package engine

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// ListKey names one of the label lists on a sheet
type ListKey string

// List keys
const (
	ListConditions          ListKey = "conditions"
	ListResistances         ListKey = "resistances"
	ListVulnerabilities     ListKey = "vulnerabilities"
	ListImmunities          ListKey = "immunities"
	ListArmorProficiencies  ListKey = "armor"
	ListWeaponProficiencies ListKey = "weapons"
	ListLanguages           ListKey = "languages"
	ListSenses              ListKey = "senses"
)

// ListKeys lists every key in display order
var ListKeys = []ListKey{
	ListConditions, ListResistances, ListVulnerabilities, ListImmunities,
	ListArmorProficiencies, ListWeaponProficiencies, ListLanguages, ListSenses,
}

// AddToList appends a label to one of the plain label lists. Empty and
// duplicate labels change nothing. Languages and senses have their own adders.
func AddToList(c *sheet.Character, key ListKey, value string) (*sheet.Character, error) {
	out := c.Clone()
	list, err := labelList(out, key)
	if err != nil {
		return nil, err
	}

	value = strings.TrimSpace(value)
	if value == "" || slices.Contains(*list, value) {
		return out, nil
	}

	*list = append(*list, value)
	return out, nil
}

// AddLanguage adds a language once by name. Telepathy keeps a range, 30 when
// none is given; other languages never carry one.
func AddLanguage(c *sheet.Character, name string, rng int) *sheet.Character {
	out := c.Clone()
	name = strings.TrimSpace(name)
	if name == "" || slices.ContainsFunc(out.Languages, func(l sheet.Language) bool { return l.Name == name }) {
		return out
	}

	lang := sheet.Language{Name: name}
	if name == sheet.TelepathyLanguage {
		lang.Range = rng
		if lang.Range <= 0 {
			lang.Range = sheet.DefaultTelepathyRange
		}
	}

	out.Languages = append(out.Languages, lang)
	return out
}

// AddSense adds a sense once by name, with range 60 when none is given
func AddSense(c *sheet.Character, name string, rng int) *sheet.Character {
	out := c.Clone()
	name = strings.TrimSpace(name)
	if name == "" || slices.ContainsFunc(out.Senses, func(s sheet.Sense) bool { return s.Name == name }) {
		return out
	}

	if rng <= 0 {
		rng = sheet.DefaultSenseRange
	}
	out.Senses = append(out.Senses, sheet.Sense{Name: name, Range: rng})
	return out
}

// RemoveFromList drops the entry at index; an out of range index changes nothing
func RemoveFromList(c *sheet.Character, key ListKey, index int) (*sheet.Character, error) {
	out := c.Clone()

	switch key {
	case ListLanguages:
		if index >= 0 && index < len(out.Languages) {
			out.Languages = deleteAt(out.Languages, index)
		}
		return out, nil
	case ListSenses:
		if index >= 0 && index < len(out.Senses) {
			out.Senses = deleteAt(out.Senses, index)
		}
		return out, nil
	}

	list, err := labelList(out, key)
	if err != nil {
		return nil, err
	}
	if index >= 0 && index < len(*list) {
		*list = deleteAt(*list, index)
	}
	return out, nil
}

// ListEntries returns the entries of any list as display labels
func ListEntries(c *sheet.Character, key ListKey) ([]string, error) {
	switch key {
	case ListLanguages:
		entries := make([]string, len(c.Languages))
		for i, l := range c.Languages {
			entries[i] = l.Name
		}
		return entries, nil
	case ListSenses:
		entries := make([]string, len(c.Senses))
		for i, s := range c.Senses {
			entries[i] = s.Name
		}
		return entries, nil
	}

	list, err := labelList(c, key)
	if err != nil {
		return nil, err
	}
	return slices.Clone(*list), nil
}

func labelList(c *sheet.Character, key ListKey) (*[]string, error) {
	switch key {
	case ListConditions:
		return &c.ActiveConditions, nil
	case ListResistances:
		return &c.Resistances, nil
	case ListVulnerabilities:
		return &c.Vulnerabilities, nil
	case ListImmunities:
		return &c.Immunities, nil
	case ListArmorProficiencies:
		return &c.ArmorProficiencies, nil
	case ListWeaponProficiencies:
		return &c.WeaponProficiencies, nil
	case ListLanguages, ListSenses:
		return nil, errors.InvalidArgumentf("list %q holds ranged entries", key)
	default:
		return nil, errors.InvalidArgumentf("unknown list %q", key)
	}
}
