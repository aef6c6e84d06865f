package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

var damageCmd = &cobra.Command{
	Use:   "damage <amount>",
	Short: "Take damage; temporary hit points absorb it first",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := engine.ParseIntOr(args[0], 0)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.ApplyDamage(ctx, &sheet.ApplyDamageInput{Amount: amount})
		})
	},
}

var healCmd = &cobra.Command{
	Use:   "heal <amount>",
	Short: "Recover hit points up to the maximum",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := engine.ParseIntOr(args[0], 0)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.Heal(ctx, &sheet.HealInput{Amount: amount})
		})
	},
}

var tempHPCmd = &cobra.Command{
	Use:   "temp-hp <amount>",
	Short: "Set temporary hit points",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := engine.ParseIntOr(args[0], 0)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetTempHP(ctx, &sheet.SetTempHPInput{Amount: amount})
		})
	},
}

var maxHPCmd = &cobra.Command{
	Use:   "max-hp <amount>",
	Short: "Set maximum hit points",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := engine.ParseIntOr(args[0], 0)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetMaxHP(ctx, &sheet.SetMaxHPInput{Amount: amount})
		})
	},
}

var deathSavesCmd = &cobra.Command{
	Use:   "death-saves <successes> <failures>",
	Short: "Record death saving throws",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		successes := engine.ParseIntOr(args[0], 0)
		failures := engine.ParseIntOr(args[1], 0)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SetDeathSaves(ctx, &sheet.SetDeathSavesInput{Successes: successes, Failures: failures})
		})
	},
}

var hitDieCmd = &cobra.Command{
	Use:   "hit-die",
	Short: "Spend, recover or roll hit dice",
}

var hitDieSpendCmd = &cobra.Command{
	Use:   "spend",
	Short: "Spend one hit die without rolling",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.SpendHitDie(ctx)
		})
	},
}

var hitDieRecoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Recover one hit die",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.RecoverHitDie(ctx)
		})
	},
}

var hitDieRollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Spend one hit die and heal by the roll plus the constitution modifier",
	Args:  exactArgs(0),
	RunE:  runHitDieRoll,
}

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Take a rest",
}

var restShortCmd = &cobra.Command{
	Use:   "short",
	Short: "Short rest: refill short rest features",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.ShortRest(ctx)
		})
	},
}

var restLongCmd = &cobra.Command{
	Use:   "long",
	Short: "Long rest: full hit points, half the hit dice, every slot and feature",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.LongRest(ctx)
		})
	},
}

var restSlotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Refill every spell slot",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.RestoreSpellSlots(ctx)
		})
	},
}

func init() {
	hitDieCmd.AddCommand(hitDieSpendCmd)
	hitDieCmd.AddCommand(hitDieRecoverCmd)
	hitDieCmd.AddCommand(hitDieRollCmd)

	restCmd.AddCommand(restShortCmd)
	restCmd.AddCommand(restLongCmd)
	restCmd.AddCommand(restSlotsCmd)
}

func runHitDieRoll(cmd *cobra.Command, _ []string) error {
	s, done, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer done()

	result, err := s.RollHitDie(cmd.Context())
	if err != nil {
		return err
	}
	if result.Roll.Spent {
		fmt.Fprintf(cmd.OutOrStdout(), "d%d: %d %s = %d PV\n",
			result.Character.HitDice.Face, result.Roll.Rolled,
			engine.FormatModifier(result.Roll.Modifier), result.Roll.Healed)
	}
	report(cmd, result.Result)
	return nil
}
