package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

var (
	featureName        string
	featureSource      string
	featureType        string
	featureMaxUses     int
	featureRecovery    string
	featureActionType  string
	featureDescription string
)

var (
	spellName        string
	spellLevel       int
	spellSchool      string
	spellCastingTime string
	spellRange       string
	spellComponents  string
	spellDuration    string
	spellDescription string
	spellPrepared    bool
	spellRitual      bool
)

var featureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Manage features and their uses",
}

var featureUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Spend one use of a feature",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.UseFeature(ctx, &sheet.UseFeatureInput{FeatureID: args[0]})
		})
	},
}

var featureRecoverCmd = &cobra.Command{
	Use:   "recover <id>",
	Short: "Regain one use of a feature",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.RecoverFeature(ctx, &sheet.RecoverFeatureInput{FeatureID: args[0]})
		})
	},
}

var featureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a feature",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		f := entity.Feature{
			Name:        featureName,
			Source:      featureSource,
			Type:        entity.FeatureType(featureType),
			MaxUses:     featureMaxUses,
			Recovery:    entity.Recovery(featureRecovery),
			ActionType:  entity.ActionType(featureActionType),
			Description: featureDescription,
		}
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.AddFeature(ctx, &sheet.AddFeatureInput{Feature: f})
		})
	},
}

var featureDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a feature",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.DeleteFeature(ctx, &sheet.DeleteFeatureInput{FeatureID: args[0]})
		})
	},
}

var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Manage spell slots",
}

var slotAdjustCmd = &cobra.Command{
	Use:   "adjust <level> <delta>",
	Short: "Add delta to the remaining slots of a level",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := engine.ParseIntOr(args[0], 0)
		delta := engine.ParseIntOr(args[1], 0)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.AdjustSpellSlot(ctx, &sheet.AdjustSpellSlotInput{Level: level, Delta: delta})
		})
	},
}

var slotSetTotalCmd = &cobra.Command{
	Use:   "set-total <level> <total>",
	Short: "Set how many slots a level has",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := engine.ParseIntOr(args[0], 0)
		total := engine.ParseIntOr(args[1], 0)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetSpellSlotTotal(ctx, &sheet.SetSpellSlotTotalInput{Level: level, Total: total})
		})
	},
}

var castCmd = &cobra.Command{
	Use:   "cast <spell-id>",
	Short: "Cast a spell, spending a slot of its level",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.CastSpell(ctx, &sheet.CastSpellInput{SpellID: args[0]})
		})
	},
}

var spellCmd = &cobra.Command{
	Use:   "spell",
	Short: "Manage known spells",
}

var spellAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Learn a spell",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		sp := entity.Spell{
			Name:        spellName,
			Level:       spellLevel,
			School:      spellSchool,
			CastingTime: spellCastingTime,
			Range:       spellRange,
			Components:  spellComponents,
			Duration:    spellDuration,
			Description: spellDescription,
			Prepared:    spellPrepared,
			Ritual:      spellRitual,
		}
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.AddSpell(ctx, &sheet.AddSpellInput{Spell: sp})
		})
	},
}

var spellPrepareCmd = &cobra.Command{
	Use:   "prepare <id>",
	Short: "Toggle whether a spell is prepared",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.TogglePrepared(ctx, &sheet.TogglePreparedInput{SpellID: args[0]})
		})
	},
}

var spellDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Forget a spell",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.DeleteSpell(ctx, &sheet.DeleteSpellInput{SpellID: args[0]})
		})
	},
}

var spellAttributeCmd = &cobra.Command{
	Use:   "attribute <attribute>",
	Short: "Set the spellcasting attribute",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetSpellcastingAttribute(ctx, &sheet.SetSpellcastingAttributeInput{Attribute: entity.Attribute(args[0])})
		})
	},
}

func init() {
	featureAddCmd.Flags().StringVar(&featureName, "name", "", "feature name")
	featureAddCmd.Flags().StringVar(&featureSource, "source", entity.SourceClass, "source category")
	featureAddCmd.Flags().StringVar(&featureType, "type", string(entity.FeatureTypePassive), "passive or active")
	featureAddCmd.Flags().IntVar(&featureMaxUses, "max-uses", 0, "uses per recovery for active features")
	featureAddCmd.Flags().StringVar(&featureRecovery, "recovery", string(entity.RecoveryNone), "short, long or none")
	featureAddCmd.Flags().StringVar(&featureActionType, "action-type", "", "action, bonus, reaction, other or none")
	featureAddCmd.Flags().StringVar(&featureDescription, "description", "", "free text")
	_ = featureAddCmd.MarkFlagRequired("name")

	featureCmd.AddCommand(featureUseCmd)
	featureCmd.AddCommand(featureRecoverCmd)
	featureCmd.AddCommand(featureAddCmd)
	featureCmd.AddCommand(featureDeleteCmd)

	// Deltas may be negative; stop flag parsing at the first argument
	slotAdjustCmd.Flags().SetInterspersed(false)
	slotCmd.AddCommand(slotAdjustCmd)
	slotCmd.AddCommand(slotSetTotalCmd)

	spellAddCmd.Flags().StringVar(&spellName, "name", "", "spell name")
	spellAddCmd.Flags().IntVar(&spellLevel, "level", 0, "spell level, 0 for a cantrip")
	spellAddCmd.Flags().StringVar(&spellSchool, "school", "", "school of magic")
	spellAddCmd.Flags().StringVar(&spellCastingTime, "casting-time", "", "casting time")
	spellAddCmd.Flags().StringVar(&spellRange, "range", "", "range")
	spellAddCmd.Flags().StringVar(&spellComponents, "components", "", "components")
	spellAddCmd.Flags().StringVar(&spellDuration, "duration", "", "duration")
	spellAddCmd.Flags().StringVar(&spellDescription, "description", "", "free text")
	spellAddCmd.Flags().BoolVar(&spellPrepared, "prepared", false, "mark the spell prepared")
	spellAddCmd.Flags().BoolVar(&spellRitual, "ritual", false, "the spell can be cast as a ritual")
	_ = spellAddCmd.MarkFlagRequired("name")

	spellCmd.AddCommand(spellAddCmd)
	spellCmd.AddCommand(spellPrepareCmd)
	spellCmd.AddCommand(spellDeleteCmd)
	spellCmd.AddCommand(spellAttributeCmd)
}
