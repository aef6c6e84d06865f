package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

type CLITestSuite struct {
	suite.Suite
	dir string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("RPG_SHEET_STORAGE", "sqlite")
	s.T().Setenv("RPG_SHEET_SQLITE_PATH", filepath.Join(s.dir, "sheet.db"))
	s.T().Setenv("RPG_SHEET_STORAGE_KEY", "dnd-character-sheet-v2")
	s.T().Setenv("RPG_SHEET_LOG_LEVEL", "error")
}

// run executes one CLI invocation with stdin as the answer to any prompt
func (s *CLITestSuite) run(stdin string, args ...string) (string, error) {
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLITestSuite) mustRun(args ...string) string {
	out, err := s.run("", args...)
	s.Require().NoError(err)
	return out
}

// character reads the stored record back through export
func (s *CLITestSuite) character(global ...string) *entity.Character {
	out := s.mustRun(append(global, "export", "-o", "-")...)

	var c entity.Character
	s.Require().NoError(json.Unmarshal([]byte(out), &c))
	return &c
}

// resetFlags puts every flag back to its default between invocations
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func (s *CLITestSuite) TestShowFreshSheet() {
	out := s.mustRun("show")

	s.Contains(out, "Aldric")
	s.Contains(out, "Espada Longa")
	s.Contains(out, "12/12")
	s.Contains(out, "Retomar o Fôlego")
}

func (s *CLITestSuite) TestDamagePersists() {
	out := s.mustRun("damage", "5")
	s.Contains(out, "PV 7/12")

	c := s.character()
	s.Equal(7, c.HP.Current)
}

func (s *CLITestSuite) TestNonNumericAmountIsIgnored() {
	s.mustRun("damage", "muito")

	s.Equal(12, s.character().HP.Current)
}

func (s *CLITestSuite) TestConsumePrompt() {
	testCases := []struct {
		name     string
		answer   string
		expected int
		declined bool
	}{
		{name: "declined", answer: "n\n", expected: 2, declined: true},
		{name: "no answer", answer: "", expected: 2, declined: true},
		{name: "accepted", answer: "s\n", expected: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			out, err := s.run(tc.answer, "item", "consume", "item_003")
			s.Require().NoError(err)
			if tc.declined {
				s.Contains(out, "Cancelado")
			}

			c := s.character()
			idx, ok := c.FindItemIndex("item_003")
			s.Require().True(ok)
			s.Equal(tc.expected, c.Inventory[idx].Quantity)
		})
	}
}

func (s *CLITestSuite) TestYesSkipsPrompt() {
	s.mustRun("--yes", "reset")

	c := s.character()
	s.Equal("Novo Personagem", c.Name)
	s.Empty(c.Inventory)
}

func (s *CLITestSuite) TestResetToDefaults() {
	s.mustRun("damage", "5")
	out := s.mustRun("-y", "reset", "--defaults")

	s.Contains(out, "PV 12/12")
	s.Equal(12, s.character().HP.Current)
}

func (s *CLITestSuite) TestCastWithoutSlot() {
	s.mustRun("spell", "add", "--name", "Bola de Fogo", "--level", "3")

	c := s.character()
	s.Require().Len(c.Spells, 1)
	id := c.Spells[0].ID
	s.True(strings.HasPrefix(id, "spell_"))

	out := s.mustRun("cast", id)
	s.Contains(out, sheet.WarningNoSlot)
}

func (s *CLITestSuite) TestCastSpendsSlot() {
	s.mustRun("spell", "add", "--name", "Mísseis Mágicos", "--level", "1")
	id := s.character().Spells[0].ID

	s.mustRun("--yes", "cast", id)

	c := s.character()
	idx, ok := c.SpellSlot(1)
	s.Require().True(ok)
	s.Equal(1, c.SpellSlots[idx].Current)
}

func (s *CLITestSuite) TestSlotAdjustNegative() {
	s.mustRun("slot", "adjust", "1", "-1")

	c := s.character()
	idx, _ := c.SpellSlot(1)
	s.Equal(1, c.SpellSlots[idx].Current)
}

func (s *CLITestSuite) TestHitDieRoll() {
	s.mustRun("damage", "10")

	out := s.mustRun("hit-die", "roll")
	s.Contains(out, "d10:")
	s.Equal(0, s.character().HitDice.Current)

	out = s.mustRun("hit-die", "roll")
	s.Contains(out, sheet.WarningNoHitDice)
}

func (s *CLITestSuite) TestLongRest() {
	s.mustRun("damage", "10")
	s.mustRun("feature", "use", "feat_001")

	s.mustRun("--yes", "rest", "long")

	c := s.character()
	s.Equal(12, c.HP.Current)
	idx, _ := c.FindFeatureIndex("feat_001")
	s.Equal(1, c.Features[idx].CurrentUses)
}

func (s *CLITestSuite) TestListAddAndShow() {
	s.mustRun("list", "add", "conditions", "Envenenado")
	s.mustRun("list", "add", "conditions", "Envenenado")
	s.mustRun("list", "add", "languages", "Telepatia")

	out := s.mustRun("list", "show", "conditions")
	s.Equal("0\tEnvenenado\n", out)

	c := s.character()
	s.Equal([]string{"Envenenado"}, c.ActiveConditions)
	s.Contains(c.Languages, entity.Language{Name: entity.TelepathyLanguage, Range: entity.DefaultTelepathyRange})

	s.mustRun("list", "remove", "conditions", "0")
	s.Empty(s.character().ActiveConditions)
}

func (s *CLITestSuite) TestNoteLifecycle() {
	s.mustRun("note", "add")

	c := s.character()
	s.Require().Len(c.Notes, 1)
	id := c.Notes[0].ID
	s.Equal("Sessão 1", c.Notes[0].Title)

	s.mustRun("note", "edit", id, "--content", "Encontramos o dragão.", "--tags", "dragão, caverna")
	out := s.mustRun("note", "search", "dragão")
	s.Contains(out, id)

	out = s.mustRun("note", "export", id, "--dir", s.dir)
	path := strings.TrimSpace(out)
	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("Encontramos o dragão.", string(data))

	s.mustRun("-y", "note", "delete", id)
	s.Empty(s.character().Notes)
}

func (s *CLITestSuite) TestCreatureHP() {
	s.mustRun("creature", "add", "--name", "Lobo", "--max-hp", "11", "--ac", "13")
	id := s.character().Creatures[0].ID

	s.mustRun("creature", "hp", id, "-4")

	cr := s.character().Creatures[0]
	s.Equal(entity.CreatureHP{Current: 7, Max: 11}, cr.HP)
	s.Equal(13, cr.AC)
}

func (s *CLITestSuite) TestIdentityAndCombat() {
	s.mustRun("identity", "set", "--name", "Bruna", "--level", "3")
	s.mustRun("combat", "set", "--ac", "18")
	s.mustRun("attribute", "set", "strength", "40")
	s.mustRun("skill", "cycle", "arcana")

	c := s.character()
	s.Equal("Bruna", c.Name)
	s.Equal(3, c.Level)
	s.Equal("Humano", c.Race)
	s.Equal(18, c.ArmorClass)
	s.Equal(entity.MaxAbilityScore, c.Attribute(entity.AttributeStrength).Value)
	s.Equal(entity.ProficiencyProficient, c.Skills[entity.SkillArcana].Level)
}

func (s *CLITestSuite) TestExportImportRoundTrip() {
	path := filepath.Join(s.dir, "aldric.json")
	s.mustRun("export", "-o", path)
	before := s.character()

	s.mustRun("damage", "5")
	s.mustRun("--yes", "import", path)

	s.Equal(before, s.character())
}

func (s *CLITestSuite) TestImportRejectsBadShape() {
	path := filepath.Join(s.dir, "bad.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{"name":"x"}`), 0o600))

	_, err := s.run("", "--yes", "import", path)
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Equal("Aldric", s.character().Name)
}

func (s *CLITestSuite) TestSummary() {
	testCases := []struct {
		name   string
		format string
		decode func([]byte, any) error
	}{
		{name: "json", format: "json", decode: json.Unmarshal},
		{name: "yaml", format: "yaml", decode: yaml.Unmarshal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out := s.mustRun("summary", "--format", tc.format)

			var got map[string]any
			s.Require().NoError(tc.decode([]byte(out), &got))
			s.Contains(got, "passivePerception")
			s.EqualValues(120, got["carryCapacity"])
		})
	}
}

func (s *CLITestSuite) TestErrors() {
	testCases := []struct {
		name string
		args []string
		code errors.Code
	}{
		{name: "missing argument", args: []string{"damage"}, code: errors.CodeInvalidArgument},
		{name: "unknown flag", args: []string{"show", "--nope"}, code: errors.CodeInvalidArgument},
		{name: "unknown attribute", args: []string{"attribute", "set", "luck", "10"}, code: errors.CodeInvalidArgument},
		{name: "unknown list", args: []string{"list", "add", "friends", "Bob"}, code: errors.CodeInvalidArgument},
		{name: "unknown format", args: []string{"summary", "--format", "xml"}, code: errors.CodeInvalidArgument},
		{name: "missing item", args: []string{"item", "consume", "item_999"}, code: errors.CodeNotFound},
		{name: "missing note", args: []string{"note", "export", "note_999"}, code: errors.CodeNotFound},
		{name: "bad storage", args: []string{"--storage", "ftp", "show"}, code: errors.CodeInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.run("", tc.args...)
			s.Require().Error(err)
			s.Equal(tc.code, errors.GetCode(err))
			s.Equal(2, errors.GetCode(err).ExitCode())
		})
	}
}

func (s *CLITestSuite) TestRedisBackend() {
	mr := miniredis.RunT(s.T())
	global := []string{"--storage", "redis", "--redis", mr.Addr(), "--key", "mesa-1"}

	s.mustRun(append(global, "damage", "3")...)

	stored, err := mr.Get("mesa-1")
	s.Require().NoError(err)

	var c entity.Character
	s.Require().NoError(json.Unmarshal([]byte(stored), &c))
	s.Equal(9, c.HP.Current)
	s.Equal(9, s.character(global...).HP.Current)

	// the sqlite file is untouched
	s.Equal(12, s.character().HP.Current)
}

func (s *CLITestSuite) TestFlagOverridesBadEnvironment() {
	s.T().Setenv("RPG_SHEET_STORAGE", "bogus")

	_, err := s.run("", "show")
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	out := s.mustRun("--storage", "sqlite", "show")
	s.Contains(out, "Aldric")
}

func (s *CLITestSuite) TestNoteExportStaysInDir() {
	s.mustRun("note", "add")
	id := s.character().Notes[0].ID
	s.mustRun("note", "edit", id, "--title", "../fuga", "--content", "x")

	out := s.mustRun("note", "export", id, "--dir", s.dir)
	path := strings.TrimSpace(out)
	s.Equal(filepath.Join(s.dir, "_fuga.txt"), path)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("x", string(data))
}

func (s *CLITestSuite) TestFractionalSpeed() {
	s.mustRun("combat", "set", "--speed", "7.5")
	s.Equal(entity.Speed(7.5), s.character().Speed)

	out := s.mustRun("show")
	s.Contains(out, "7.5m")
}

func (s *CLITestSuite) TestRedisUnavailable() {
	_, err := s.run("", "--storage", "redis", "--redis", "127.0.0.1:1", "show")
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}
