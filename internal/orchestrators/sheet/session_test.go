package sheet_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	confirmermock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet/mock"
	mockclock "github.com/KirkDiggler/rpg-sheet/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen/mock"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	sheetrepomock "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type fixedRoller struct{ value int }

func (r *fixedRoller) Roll(_ int) (int, error)           { return r.value, nil }
func (r *fixedRoller) RollN(count, _ int) ([]int, error) { return make([]int, count), nil }

type SessionTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *sheetrepomock.MockRepository
	mockConfirmer *confirmermock.MockConfirmer
	mockClock     *mockclock.MockClock
	mockIDs       *idgenmock.MockGenerator
	roller        *fixedRoller
	session       *sheet.Session
	ctx           context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = sheetrepomock.NewMockRepository(s.ctrl)
	s.mockConfirmer = confirmermock.NewMockConfirmer(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.mockIDs = idgenmock.NewMockGenerator(s.ctrl)
	s.roller = &fixedRoller{value: 4}
	s.ctx = context.Background()

	session, err := sheet.New(&sheet.Config{
		Repository:  s.mockRepo,
		Clock:       s.mockClock,
		IDGenerator: s.mockIDs,
		Roller:      s.roller,
		Confirmer:   s.mockConfirmer,
	})
	s.Require().NoError(err)
	s.session = session
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// open loads c into the session
func (s *SessionTestSuite) open(c *entity.Character) {
	s.mockRepo.EXPECT().
		Load(s.ctx, sheetrepo.LoadInput{}).
		Return(&sheetrepo.LoadOutput{Character: c, Source: sheetrepo.SourceStored}, nil)

	_, err := s.session.Open(s.ctx)
	s.Require().NoError(err)
}

// expectSave captures the next saved record
func (s *SessionTestSuite) expectSave() *entity.Character {
	saved := &entity.Character{}
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sheetrepo.SaveInput) (*sheetrepo.SaveOutput, error) {
			*saved = *input.Character
			return &sheetrepo.SaveOutput{}, nil
		})
	return saved
}

func (s *SessionTestSuite) current() *entity.Character {
	c, err := s.session.Character()
	s.Require().NoError(err)
	return c
}

func (s *SessionTestSuite) TestNewValidation() {
	_, err := sheet.New(&sheet.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	for _, f := range []string{"Repository", "Clock", "IDGenerator", "Roller", "Confirmer"} {
		s.Contains(fields, f)
	}

	_, err = sheet.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestRequiresOpen() {
	_, err := s.session.Character()
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.session.ApplyDamage(s.ctx, &sheet.ApplyDamageInput{Amount: 3})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.session.LongRest(s.ctx)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.session.Export()
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SessionTestSuite) TestNilInput() {
	s.open(entity.Default())

	testCases := []struct {
		name string
		call func() error
	}{
		{name: "apply damage", call: func() error {
			_, err := s.session.ApplyDamage(s.ctx, nil)
			return err
		}},
		{name: "set combat stats", call: func() error {
			_, err := s.session.SetCombatStats(s.ctx, nil)
			return err
		}},
		{name: "consume item", call: func() error {
			_, err := s.session.ConsumeItem(s.ctx, nil)
			return err
		}},
		{name: "cast spell", call: func() error {
			_, err := s.session.CastSpell(s.ctx, nil)
			return err
		}},
		{name: "import", call: func() error {
			_, err := s.session.Import(s.ctx, nil)
			return err
		}},
		{name: "export note", call: func() error {
			_, err := s.session.ExportNote(nil)
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before := s.current()

			err := tc.call()
			s.True(errors.IsInvalidArgument(err))
			s.Empty(cmp.Diff(before, s.current()))
		})
	}
}

func (s *SessionTestSuite) TestOpen() {
	s.mockRepo.EXPECT().
		Load(s.ctx, sheetrepo.LoadInput{}).
		Return(&sheetrepo.LoadOutput{Character: entity.Default(), Source: sheetrepo.SourceDefault}, nil)

	out, err := s.session.Open(s.ctx)
	s.Require().NoError(err)
	s.Equal(sheetrepo.SourceDefault, out.Source)
	s.Equal("Aldric", s.current().Name)
}

func (s *SessionTestSuite) TestOpenError() {
	s.mockRepo.EXPECT().
		Load(s.ctx, sheetrepo.LoadInput{}).
		Return(nil, errors.Canceled("load canceled"))

	_, err := s.session.Open(s.ctx)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *SessionTestSuite) TestApplyPersists() {
	s.open(builders.NewCharacterBuilder().WithHP(10, 10, 3).Build())
	saved := s.expectSave()

	result, err := s.session.ApplyDamage(s.ctx, &sheet.ApplyDamageInput{Amount: 5})
	s.Require().NoError(err)

	want := entity.HitPoints{Current: 8, Max: 10, Temp: 0}
	s.Equal(want, result.Character.HP)
	s.Equal(want, saved.HP)
	s.Equal(want, s.current().HP)
	s.False(result.Unsaved)
}

func (s *SessionTestSuite) TestSaveFailureIsNotReturned() {
	s.open(builders.NewCharacterBuilder().WithHP(4, 10, 0).Build())
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	result, err := s.session.Heal(s.ctx, &sheet.HealInput{Amount: 3})
	s.Require().NoError(err)
	s.True(result.Unsaved)
	s.Equal(7, s.current().HP.Current)
}

func (s *SessionTestSuite) TestMutationErrorKeepsState() {
	orig := builders.NewCharacterBuilder().Build()
	s.open(orig)

	_, err := s.session.UseFeature(s.ctx, &sheet.UseFeatureInput{FeatureID: "missing"})
	s.True(errors.IsNotFound(err))
	s.Equal(orig, s.current())
}

func (s *SessionTestSuite) TestConfirmedOperations() {
	testCases := []struct {
		name   string
		prompt string
		call   func() (*sheet.Result, error)
	}{
		{
			name:   "short rest",
			prompt: "Realizar Descanso Curto?\nIsso recuperará habilidades de 'Recarga Curta'.",
			call:   func() (*sheet.Result, error) { return s.session.ShortRest(s.ctx) },
		},
		{
			name:   "long rest",
			prompt: "Realizar Descanso Longo?\nRecupera Vida, Magias e Habilidades.",
			call:   func() (*sheet.Result, error) { return s.session.LongRest(s.ctx) },
		},
		{
			name:   "restore slots",
			prompt: "Recuperar todos os slots de magia?",
			call:   func() (*sheet.Result, error) { return s.session.RestoreSpellSlots(s.ctx) },
		},
		{
			name:   "delete feature",
			prompt: "Excluir esta habilidade?",
			call:   func() (*sheet.Result, error) { return s.session.DeleteFeature(s.ctx, &sheet.DeleteFeatureInput{FeatureID: "feat_001"}) },
		},
		{
			name:   "delete item",
			prompt: "Tem certeza que deseja excluir este item permanentemente?",
			call:   func() (*sheet.Result, error) { return s.session.DeleteItem(s.ctx, &sheet.DeleteItemInput{ItemID: "item_001"}) },
		},
		{
			name:   "consume item",
			prompt: `Deseja consumir 1 unidade de "Poção de Cura"?`,
			call:   func() (*sheet.Result, error) { return s.session.ConsumeItem(s.ctx, &sheet.ConsumeItemInput{ItemID: "item_003"}) },
		},
		{
			name:   "reset",
			prompt: "TEM CERTEZA? Isso apagará todos os dados da ficha atual e criará uma ficha em branco nível 1.",
			call:   func() (*sheet.Result, error) { return s.session.Reset(s.ctx) },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name+" declined", func() {
			orig := builders.FromDefault().WithHP(3, 12, 0).Build()
			s.open(orig)
			s.mockConfirmer.EXPECT().Confirm(s.ctx, tc.prompt).Return(false, nil)

			result, err := tc.call()
			s.Require().NoError(err)
			s.True(result.Declined)
			s.Equal(orig, result.Character)
			s.Equal(orig, s.current())
		})

		s.Run(tc.name+" accepted", func() {
			orig := builders.FromDefault().WithHP(3, 12, 0).Build()
			s.open(orig)
			s.mockConfirmer.EXPECT().Confirm(s.ctx, tc.prompt).Return(true, nil)
			s.expectSave()

			result, err := tc.call()
			s.Require().NoError(err)
			s.False(result.Declined)
		})
	}
}

func (s *SessionTestSuite) TestConfirmError() {
	s.open(entity.Default())
	s.mockConfirmer.EXPECT().Confirm(s.ctx, gomock.Any()).Return(false, stderrors.New("stdin closed"))

	_, err := s.session.LongRest(s.ctx)
	s.Error(err)
}

func (s *SessionTestSuite) TestDeleteMissingSkipsPrompt() {
	s.open(entity.Default())

	testCases := []struct {
		name       string
		call       func() error
		entityType string
	}{
		{name: "delete item", entityType: entity.EntityTypeItem, call: func() error {
			_, err := s.session.DeleteItem(s.ctx, &sheet.DeleteItemInput{ItemID: "missing"})
			return err
		}},
		{name: "consume item", entityType: entity.EntityTypeItem, call: func() error {
			_, err := s.session.ConsumeItem(s.ctx, &sheet.ConsumeItemInput{ItemID: "missing"})
			return err
		}},
		{name: "delete feature", entityType: entity.EntityTypeFeature, call: func() error {
			_, err := s.session.DeleteFeature(s.ctx, &sheet.DeleteFeatureInput{FeatureID: "missing"})
			return err
		}},
		{name: "delete spell", entityType: entity.EntityTypeSpell, call: func() error {
			_, err := s.session.DeleteSpell(s.ctx, &sheet.DeleteSpellInput{SpellID: "missing"})
			return err
		}},
		{name: "delete creature", entityType: entity.EntityTypeCreature, call: func() error {
			_, err := s.session.DeleteCreature(s.ctx, &sheet.DeleteCreatureInput{CreatureID: "missing"})
			return err
		}},
		{name: "delete note", entityType: entity.EntityTypeNote, call: func() error {
			_, err := s.session.DeleteNote(s.ctx, &sheet.DeleteNoteInput{NoteID: "missing"})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.True(errors.IsNotFound(err))
			s.Equal(tc.entityType, errors.GetMeta(err)["entity_type"])
		})
	}
}

func (s *SessionTestSuite) TestCastSpell() {
	caster := func(current int) *entity.Character {
		return builders.NewCharacterBuilder().
			WithSpellSlot(1, current, 2).
			WithSpell(testutils.TestSpell()).
			WithSpell(testutils.TestCantrip()).
			Build()
	}

	s.Run("consumes a slot after confirmation", func() {
		s.open(caster(2))
		s.mockConfirmer.EXPECT().
			Confirm(s.ctx, `Conjurar "Mísseis Mágicos" gastando 1 slot de nível 1?`).
			Return(true, nil)
		saved := s.expectSave()

		result, err := s.session.CastSpell(s.ctx, &sheet.CastSpellInput{SpellID: testutils.TestSpellID})
		s.Require().NoError(err)
		s.Empty(result.Warning)
		s.Equal(1, saved.SpellSlots[0].Current)
	})

	s.Run("cantrip is free and silent", func() {
		s.open(caster(2))

		result, err := s.session.CastSpell(s.ctx, &sheet.CastSpellInput{SpellID: testutils.TestCantripID})
		s.Require().NoError(err)
		s.Equal(2, result.Character.SpellSlots[0].Current)
	})

	s.Run("no slot warns without prompting", func() {
		s.open(caster(0))

		result, err := s.session.CastSpell(s.ctx, &sheet.CastSpellInput{SpellID: testutils.TestSpellID})
		s.Require().NoError(err)
		s.Equal(sheet.WarningNoSlot, result.Warning)
		s.False(result.Declined)
	})

	s.Run("unknown spell", func() {
		s.open(caster(1))

		_, err := s.session.CastSpell(s.ctx, &sheet.CastSpellInput{SpellID: "missing"})
		s.True(errors.IsNotFound(err))
	})
}

func (s *SessionTestSuite) TestAddEntriesUseGeneratedIDs() {
	s.open(builders.NewCharacterBuilder().Build())

	s.mockIDs.EXPECT().Generate(idgen.KindFeature).Return("feat_101")
	s.expectSave()
	result, err := s.session.AddFeature(s.ctx, &sheet.AddFeatureInput{Feature: entity.Feature{
		ID:       "ignored",
		Name:     "Fúria",
		Type:     entity.FeatureTypeActive,
		MaxUses:  2,
		Recovery: entity.RecoveryLong,
	}})
	s.Require().NoError(err)
	s.Equal("feat_101", result.Character.Features[0].ID)
	s.Equal(2, result.Character.Features[0].CurrentUses)

	s.mockIDs.EXPECT().Generate(idgen.KindItem).Return("item_101")
	s.expectSave()
	result, err = s.session.AddItem(s.ctx, &sheet.AddItemInput{Item: entity.Item{Name: "Corda", Quantity: 1}})
	s.Require().NoError(err)
	s.Equal("item_101", result.Character.Inventory[0].ID)

	s.mockIDs.EXPECT().Generate(idgen.KindSpell).Return("spell_101")
	s.expectSave()
	result, err = s.session.AddSpell(s.ctx, &sheet.AddSpellInput{Spell: testutils.TestSpell()})
	s.Require().NoError(err)
	s.Equal("spell_101", result.Character.Spells[0].ID)

	s.mockIDs.EXPECT().Generate(idgen.KindCreature).Return("creature_101")
	s.expectSave()
	result, err = s.session.AddCreature(s.ctx, &sheet.AddCreatureInput{Creature: entity.Creature{Name: "Falcão", AC: 13}})
	s.Require().NoError(err)
	hawk := result.Character.Creatures[0]
	s.Equal("creature_101", hawk.ID)
	s.Equal(13, hawk.AC)
	s.Equal("Besta", hawk.Type)
	s.Equal("9m", hawk.Speed)
	s.Equal(entity.CreatureHP{Current: 10, Max: 10}, hawk.HP)
}

func (s *SessionTestSuite) TestAddEntryValidation() {
	s.open(builders.NewCharacterBuilder().Build())
	s.mockIDs.EXPECT().Generate(idgen.KindItem).Return("item_101")

	_, err := s.session.AddItem(s.ctx, &sheet.AddItemInput{Item: entity.Item{Name: ""}})
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.current().Inventory)
}

func (s *SessionTestSuite) TestAddNote() {
	s.open(builders.NewCharacterBuilder().Build())
	s.mockIDs.EXPECT().Generate(idgen.KindNote).Return("note_101")
	s.mockClock.EXPECT().Now().Return(time.Date(2024, time.December, 24, 21, 0, 0, 0, time.UTC))
	s.expectSave()

	result, err := s.session.AddNote(s.ctx)
	s.Require().NoError(err)
	s.Equal(entity.Note{ID: "note_101", Title: "Sessão 1", Date: "24/12/2024"}, result.Character.Notes[0])
}

func (s *SessionTestSuite) TestExportNote() {
	s.open(builders.NewCharacterBuilder().WithNote(entity.Note{ID: "n1", Title: "A Cripta", Content: "Goblins."}).Build())

	out, err := s.session.ExportNote(&sheet.ExportNoteInput{NoteID: "n1"})
	s.Require().NoError(err)
	s.Equal("A Cripta.txt", out.FileName)
	s.Equal("Goblins.", string(out.Data))

	_, err = s.session.ExportNote(&sheet.ExportNoteInput{NoteID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *SessionTestSuite) TestRollHitDie() {
	s.open(builders.NewCharacterBuilder().
		WithAttribute(entity.AttributeConstitution, 14).
		WithHP(2, 20, 0).
		WithHitDice(1, 1, 8).
		Build())
	saved := s.expectSave()

	result, err := s.session.RollHitDie(s.ctx)
	s.Require().NoError(err)
	s.Equal(engine.HitDieRoll{Spent: true, Rolled: 4, Modifier: 2, Healed: 6}, result.Roll)
	s.Equal(8, saved.HP.Current)
	s.Equal(0, saved.HitDice.Current)

	result, err = s.session.RollHitDie(s.ctx)
	s.Require().NoError(err)
	s.Equal(sheet.WarningNoHitDice, result.Warning)
	s.False(result.Roll.Spent)
}

func (s *SessionTestSuite) TestImport() {
	s.open(entity.Default())

	s.Run("invalid data skips the prompt", func() {
		before := s.current()

		_, err := s.session.Import(s.ctx, &sheet.ImportInput{Data: []byte(`{"name":"Mira"}`)})
		s.True(errors.IsInvalidArgument(err))
		s.Empty(cmp.Diff(before, s.current()))
	})

	s.Run("declined", func() {
		before := s.current()
		s.mockConfirmer.EXPECT().
			Confirm(s.ctx, `Substituir a ficha atual pela de "Mira"?`).
			Return(false, nil)

		result, err := s.session.Import(s.ctx, &sheet.ImportInput{Data: []byte(`{"name":"Mira","attributes":{},"hp":{"current":1,"max":1}}`)})
		s.Require().NoError(err)
		s.True(result.Declined)
		s.Empty(cmp.Diff(before, s.current()))
	})

	s.Run("accepted", func() {
		s.mockConfirmer.EXPECT().Confirm(s.ctx, gomock.Any()).Return(true, nil)
		saved := s.expectSave()

		result, err := s.session.Import(s.ctx, &sheet.ImportInput{Data: []byte(`{"name":"Mira","attributes":{},"hp":{"current":1,"max":1}}`)})
		s.Require().NoError(err)
		s.Equal("Mira", result.Character.Name)
		s.Equal("Mira", saved.Name)
	})
}

func (s *SessionTestSuite) TestResetToDefaults() {
	s.open(builders.NewCharacterBuilder().WithName("Lyra").Build())
	s.mockConfirmer.EXPECT().Confirm(s.ctx, gomock.Any()).Return(true, nil)
	s.mockRepo.EXPECT().
		Delete(s.ctx, sheetrepo.DeleteInput{}).
		Return(&sheetrepo.DeleteOutput{Existed: true}, nil)

	result, err := s.session.ResetToDefaults(s.ctx)
	s.Require().NoError(err)
	s.Equal("Aldric", result.Character.Name)
	s.Equal("Aldric", s.current().Name)
}

func (s *SessionTestSuite) TestExport() {
	s.open(builders.NewCharacterBuilder().WithName("Lyra da Lua").WithLevel(5).Build())

	out, err := s.session.Export()
	s.Require().NoError(err)
	s.Equal("Lyra_da_Lua_Nv5.json", out.FileName)

	back, err := engine.Import(out.Data)
	s.Require().NoError(err)
	s.Equal("Lyra da Lua", back.Name)
}

func (s *SessionTestSuite) TestCharacterIsACopy() {
	s.open(entity.Default())

	c := s.current()
	c.Name = "changed"
	c.Inventory[0].Name = "changed"

	again := s.current()
	s.Equal("Aldric", again.Name)
	s.Equal("Espada Longa", again.Inventory[0].Name)
}
