package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Display fallbacks for weapons without damage or range
const (
	DefaultWeaponDamage = "1d4"
	DefaultWeaponRange  = "1.5m"
)

// ActionGroup is everything usable with one kind of action
type ActionGroup struct {
	Weapons     []sheet.Item
	Consumables []sheet.Item
	Features    []sheet.Feature
}

// Empty reports a group with nothing in it
func (g ActionGroup) Empty() bool {
	return len(g.Weapons) == 0 && len(g.Consumables) == 0 && len(g.Features) == 0
}

// Actions buckets equipped weapons, consumables and active features by
// action type. Entries without a type count as actions.
type Actions struct {
	Action   ActionGroup
	Bonus    ActionGroup
	Reaction ActionGroup
	Other    ActionGroup
	Passive  []sheet.Feature
}

// GroupActions builds the combat view of a sheet
func GroupActions(c *sheet.Character) *Actions {
	a := &Actions{}

	for _, item := range c.Inventory {
		switch {
		case item.Type == sheet.ItemTypeWeapon && item.Equipped:
			if g := a.group(item.ActionType); g != nil {
				g.Weapons = append(g.Weapons, item)
			}
		case item.Type == sheet.ItemTypeConsumable:
			if g := a.group(item.ActionType); g != nil {
				g.Consumables = append(g.Consumables, item)
			}
		}
	}

	for _, f := range c.Features {
		switch f.Type {
		case sheet.FeatureTypeActive:
			if g := a.group(f.ActionType); g != nil {
				g.Features = append(g.Features, f)
			}
		case sheet.FeatureTypePassive:
			a.Passive = append(a.Passive, f)
		}
	}

	return a
}

func (a *Actions) group(t sheet.ActionType) *ActionGroup {
	switch t {
	case sheet.ActionTypeAction, "":
		return &a.Action
	case sheet.ActionTypeBonus:
		return &a.Bonus
	case sheet.ActionTypeReaction:
		return &a.Reaction
	case sheet.ActionTypeOther:
		return &a.Other
	default:
		return nil
	}
}

// GroupFeaturesBySource files features under their source category; sources
// outside the known categories go to "Outro".
func GroupFeaturesBySource(features []sheet.Feature) map[string][]sheet.Feature {
	groups := make(map[string][]sheet.Feature, len(sheet.SourceCategories))
	for _, f := range features {
		category := sheet.SourceOther
		for _, known := range sheet.SourceCategories {
			if f.Source == known {
				category = known
				break
			}
		}
		groups[category] = append(groups[category], f)
	}
	return groups
}

// GroupSpellsByLevel files spells under their level, 0 for cantrips
func GroupSpellsByLevel(spells []sheet.Spell) map[int][]sheet.Spell {
	groups := make(map[int][]sheet.Spell)
	for _, s := range spells {
		groups[s.Level] = append(groups[s.Level], s)
	}
	return groups
}

// FilterInventory keeps items of the given type (empty matches all) whose
// name contains query, ignoring case.
func FilterInventory(items []sheet.Item, itemType sheet.ItemType, query string) []sheet.Item {
	query = strings.ToLower(query)

	var out []sheet.Item
	for _, item := range items {
		if itemType != "" && item.Type != itemType {
			continue
		}
		if !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SearchNotes keeps notes whose title or content contains query, ignoring case
func SearchNotes(notes []sheet.Note, query string) []sheet.Note {
	query = strings.ToLower(query)

	var out []sheet.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), query) || strings.Contains(strings.ToLower(n.Content), query) {
			out = append(out, n)
		}
	}
	return out
}
