package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type GroupsTestSuite struct {
	suite.Suite
}

func TestGroupsSuite(t *testing.T) {
	suite.Run(t, new(GroupsTestSuite))
}

func names[T any](in []T, name func(T) string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, name(v))
	}
	return out
}

func itemName(i sheet.Item) string       { return i.Name }
func featureName(f sheet.Feature) string { return f.Name }

func (s *GroupsTestSuite) TestGroupActionsDefault() {
	a := engine.GroupActions(sheet.Default())

	s.Equal([]string{"Espada Longa"}, names(a.Action.Weapons, itemName))
	s.Equal([]string{"Poção de Cura"}, names(a.Action.Consumables, itemName))
	s.Equal([]string{"Retomar o Fôlego"}, names(a.Bonus.Features, featureName))
	s.Equal([]string{"Estilo de Combate (Defesa)"}, names(a.Passive, featureName))
	s.True(a.Reaction.Empty())
	s.True(a.Other.Empty())
	s.False(a.Action.Empty())
}

func (s *GroupsTestSuite) TestGroupActionsRules() {
	unequipped := testutils.TestSword()
	unequipped.ID = "dagger"
	unequipped.Name = "Adaga"
	unequipped.Equipped = false

	untyped := testutils.TestSword()
	untyped.ActionType = ""

	reactive := testutils.TestActiveFeature(1, 1, sheet.RecoveryShort)
	reactive.ActionType = sheet.ActionTypeReaction

	none := sheet.Feature{ID: "odd", Name: "Sem ação", Type: sheet.FeatureTypeActive, ActionType: sheet.ActionTypeNone}

	c := builders.NewCharacterBuilder().
		WithItem(untyped).
		WithItem(unequipped).
		WithItem(testutils.TestPotion(1)).
		WithFeature(reactive).
		WithFeature(none).
		Build()

	a := engine.GroupActions(c)

	s.Equal([]string{"Espada Curta"}, names(a.Action.Weapons, itemName))
	s.Equal([]string{"Poção de Cura"}, names(a.Action.Consumables, itemName))
	s.Equal([]string{"Surto de Ação"}, names(a.Reaction.Features, featureName))
	s.True(a.Bonus.Empty())
	s.True(a.Other.Empty())
	s.Empty(a.Passive)
}

func (s *GroupsTestSuite) TestGroupFeaturesBySource() {
	features := []sheet.Feature{
		{ID: "1", Name: "A", Source: sheet.SourceClass},
		{ID: "2", Name: "B", Source: sheet.SourceRace},
		{ID: "3", Name: "C", Source: "Guerreiro 1"},
		{ID: "4", Name: "D", Source: ""},
		{ID: "5", Name: "E", Source: sheet.SourceClass},
	}

	groups := engine.GroupFeaturesBySource(features)

	s.Equal([]string{"A", "E"}, names(groups[sheet.SourceClass], featureName))
	s.Equal([]string{"B"}, names(groups[sheet.SourceRace], featureName))
	s.Equal([]string{"C", "D"}, names(groups[sheet.SourceOther], featureName))
	s.Empty(groups[sheet.SourceFeat])
}

func (s *GroupsTestSuite) TestGroupSpellsByLevel() {
	groups := engine.GroupSpellsByLevel([]sheet.Spell{testutils.TestSpell(), testutils.TestCantrip()})

	s.Len(groups[0], 1)
	s.Len(groups[1], 1)
	s.Equal(testutils.TestCantripID, groups[0][0].ID)
}

func (s *GroupsTestSuite) TestFilterInventory() {
	items := sheet.Default().Inventory

	testCases := []struct {
		name     string
		itemType sheet.ItemType
		query    string
		want     []string
	}{
		{name: "all", want: []string{"Espada Longa", "Cota de Malha", "Poção de Cura"}},
		{name: "by type", itemType: sheet.ItemTypeArmor, want: []string{"Cota de Malha"}},
		{name: "by query ignoring case", query: "ESPADA", want: []string{"Espada Longa"}},
		{name: "type and query", itemType: sheet.ItemTypeWeapon, query: "poção", want: []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, names(engine.FilterInventory(items, tc.itemType, tc.query), itemName))
		})
	}
}

func (s *GroupsTestSuite) TestSearchNotes() {
	notes := []sheet.Note{
		{ID: "1", Title: "Sessão 1", Content: "Encontramos o dragão."},
		{ID: "2", Title: "A Torre", Content: "Nada aconteceu."},
	}

	s.Len(engine.SearchNotes(notes, "DRAGÃO"), 1)
	s.Len(engine.SearchNotes(notes, "torre"), 1)
	s.Len(engine.SearchNotes(notes, ""), 2)
	s.Empty(engine.SearchNotes(notes, "goblin"))
}
