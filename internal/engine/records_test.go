package engine_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type RecordsTestSuite struct {
	suite.Suite
}

func TestRecordsSuite(t *testing.T) {
	suite.Run(t, new(RecordsTestSuite))
}

func (s *RecordsTestSuite) TestExportImportRoundTrip() {
	orig := builders.FromDefault().
		WithSpell(testutils.TestSpell()).
		WithCreature(testutils.TestWolf()).
		WithNote(sheet.Note{ID: testutils.TestNoteID, Title: "Sessão 1", Date: "01/02/2024", Tags: []string{"início"}}).
		Build()
	orig = engine.AddSense(orig, "Visão no Escuro", 0)

	data, err := engine.ExportJSON(orig)
	s.Require().NoError(err)
	s.Contains(string(data), "\n  \"name\": \"Aldric\"")

	got, err := engine.Import(data)
	s.Require().NoError(err)
	s.Empty(cmp.Diff(orig, got, cmpopts.EquateEmpty()))
}

func (s *RecordsTestSuite) TestImportRejects() {
	testCases := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{name: "not json", input: `{nope`, check: errors.IsInvalidArgument},
		{name: "array", input: `[1,2]`, check: errors.IsInvalidArgument},
		{name: "string", input: `"Aldric"`, check: errors.IsInvalidArgument},
		{name: "missing hp", input: `{"name":"X","attributes":{"strength":{"value":10}}}`, check: errors.IsInvalidArgument},
		{name: "missing attributes", input: `{"name":"X","hp":{"current":1,"max":1}}`, check: errors.IsInvalidArgument},
		{name: "null hp", input: `{"attributes":{},"hp":null}`, check: errors.IsInvalidArgument},
		{name: "bad field type", input: `{"attributes":{},"hp":{},"level":"three"}`, check: errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := engine.Import([]byte(tc.input))
			s.Nil(got)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *RecordsTestSuite) TestImportMissingFieldsListed() {
	_, err := engine.Import([]byte(`{"name":"X"}`))
	s.Require().Error(err)

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "attributes")
	s.Contains(fields, "hp")
}

func (s *RecordsTestSuite) TestImportReplacesWholesale() {
	got, err := engine.Import([]byte(`{"name":"Mira","attributes":{"wisdom":{"value":18}},"hp":{"current":5,"max":8},"speed":"9m"}`))
	s.Require().NoError(err)

	s.Equal("Mira", got.Name)
	s.Equal(18, got.Attribute(sheet.AttributeWisdom).Value)
	s.Equal(sheet.Speed(9), got.Speed)
	s.Equal(0, got.Level)
	s.Empty(got.Inventory)
}

func (s *RecordsTestSuite) TestReset() {
	s.Empty(cmp.Diff(sheet.Blank(), engine.Reset()))
}

func (s *RecordsTestSuite) TestExportFileName() {
	testCases := []struct {
		name     string
		charName string
		level    int
		want     string
	}{
		{name: "simple", charName: "Aldric", level: 1, want: "Aldric_Nv1.json"},
		{name: "spaces", charName: "Lyra  da  Lua", level: 7, want: "Lyra_da_Lua_Nv7.json"},
		{name: "tabs", charName: "Bo\tRin", level: 3, want: "Bo_Rin_Nv3.json"},
		{name: "empty name", charName: "", level: 2, want: "Personagem_Nv2.json"},
		{name: "slash", charName: "A/B", level: 1, want: "A_B_Nv1.json"},
		{name: "parent directory", charName: "../x", level: 1, want: "_x_Nv1.json"},
		{name: "only dots", charName: "..", level: 4, want: "Personagem_Nv4.json"},
		{name: "backslash and reserved", charName: `C:\Lyra?`, level: 2, want: "C__Lyra__Nv2.json"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := builders.NewCharacterBuilder().WithName(tc.charName).WithLevel(tc.level).Build()
			got := engine.ExportFileName(c)
			s.Equal(tc.want, got)
			s.Equal(got, filepath.Base(got))
		})
	}
}

func (s *RecordsTestSuite) TestFractionalSpeedSurvivesImportExport() {
	got, err := engine.Import([]byte(`{"attributes":{"dexterity":{"value":14}},"hp":{"current":9,"max":9},"speed":"7,5m"}`))
	s.Require().NoError(err)
	s.Equal(sheet.Speed(7.5), got.Speed)

	data, err := engine.ExportJSON(got)
	s.Require().NoError(err)

	again, err := engine.Import(data)
	s.Require().NoError(err)
	s.Equal(sheet.Speed(7.5), again.Speed)
	s.Empty(cmp.Diff(got, again, cmpopts.EquateEmpty()))
}
