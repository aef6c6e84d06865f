package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

var (
	identityName       string
	identityRace       string
	identityClass      string
	identityLevel      int
	identityBackground string
	identityAlignment  string
	identityXP         int

	combatAC          int
	combatInitiative  int
	combatSpeed       float64
	combatProficiency int
	combatHitDice     int
	combatHitDieFace  int

	bioText       string
	campaignNotes string
)

var attributeCmd = &cobra.Command{
	Use:   "attribute",
	Short: "Manage ability scores",
}

var attributeSetCmd = &cobra.Command{
	Use:   "set <attribute> <value>",
	Short: "Set an ability score, kept within 1 and 30",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		attr := entity.Attribute(args[0])
		value := engine.ParseIntOr(args[1], entity.MinAbilityScore)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetAttribute(ctx, &sheet.SetAttributeInput{Attribute: attr, Value: value})
		})
	},
}

var attributeSaveCmd = &cobra.Command{
	Use:   "save <attribute>",
	Short: "Toggle saving throw proficiency",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.ToggleSaveProficiency(ctx, &sheet.ToggleSaveProficiencyInput{Attribute: entity.Attribute(args[0])})
		})
	},
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skill proficiencies",
}

var skillCycleCmd = &cobra.Command{
	Use:   "cycle <skill>",
	Short: "Cycle a skill through none, proficient and expert",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.CycleSkill(ctx, &sheet.CycleSkillInput{Skill: entity.SkillName(args[0])})
		})
	},
}

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Manage name, race, class and level",
}

var identitySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the identity fields given as flags",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		update := engine.IdentityUpdate{
			Name:       changed(flags.Changed("name"), identityName),
			Race:       changed(flags.Changed("race"), identityRace),
			Class:      changed(flags.Changed("class"), identityClass),
			Level:      changed(flags.Changed("level"), identityLevel),
			Background: changed(flags.Changed("background"), identityBackground),
			Alignment:  changed(flags.Changed("alignment"), identityAlignment),
			XP:         changed(flags.Changed("xp"), identityXP),
		}
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetIdentity(ctx, &sheet.SetIdentityInput{Update: update})
		})
	},
}

var combatCmd = &cobra.Command{
	Use:   "combat",
	Short: "Manage armor class, initiative, speed and hit dice",
}

var combatSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the combat numbers given as flags",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		update := engine.CombatUpdate{
			ArmorClass:       changed(flags.Changed("ac"), combatAC),
			Initiative:       changed(flags.Changed("initiative"), combatInitiative),
			Speed:            changed(flags.Changed("speed"), combatSpeed),
			ProficiencyBonus: changed(flags.Changed("proficiency"), combatProficiency),
			HitDiceTotal:     changed(flags.Changed("hit-dice"), combatHitDice),
			HitDiceFace:      changed(flags.Changed("hit-die-face"), combatHitDieFace),
		}
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetCombatStats(ctx, &sheet.SetCombatStatsInput{Update: update})
		})
	},
}

var bioCmd = &cobra.Command{
	Use:   "bio",
	Short: "Manage the backstory and campaign notes",
}

var bioSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the backstory or campaign notes",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		bio := changed(flags.Changed("bio"), bioText)
		notes := changed(flags.Changed("campaign-notes"), campaignNotes)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetBio(ctx, &sheet.SetBioInput{Bio: bio, CampaignNotes: notes})
		})
	},
}

func init() {
	attributeCmd.AddCommand(attributeSetCmd)
	attributeCmd.AddCommand(attributeSaveCmd)

	skillCmd.AddCommand(skillCycleCmd)

	f := identitySetCmd.Flags()
	f.StringVar(&identityName, "name", "", "character name")
	f.StringVar(&identityRace, "race", "", "race")
	f.StringVar(&identityClass, "class", "", "class")
	f.IntVar(&identityLevel, "level", 1, "character level")
	f.StringVar(&identityBackground, "background", "", "background")
	f.StringVar(&identityAlignment, "alignment", "", "alignment")
	f.IntVar(&identityXP, "xp", 0, "experience points")
	identityCmd.AddCommand(identitySetCmd)

	f = combatSetCmd.Flags()
	f.IntVar(&combatAC, "ac", 10, "armor class")
	f.IntVar(&combatInitiative, "initiative", 0, "initiative bonus")
	f.Float64Var(&combatSpeed, "speed", 9, "speed in meters")
	f.IntVar(&combatProficiency, "proficiency", 2, "proficiency bonus")
	f.IntVar(&combatHitDice, "hit-dice", 1, "total hit dice")
	f.IntVar(&combatHitDieFace, "hit-die-face", 8, "hit die size")
	combatCmd.AddCommand(combatSetCmd)

	bioSetCmd.Flags().StringVar(&bioText, "bio", "", "backstory")
	bioSetCmd.Flags().StringVar(&campaignNotes, "campaign-notes", "", "campaign notes")
	bioCmd.AddCommand(bioSetCmd)
}

// changed returns a pointer to v when the flag was set, nil otherwise
func changed[T any](set bool, v T) *T {
	if !set {
		return nil
	}
	return &v
}
