// Package main is the entry point for the character sheet CLI
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "sheet",
	Short: "D&D character sheet",
	Long: `sheet keeps one D&D 5e character record and applies table-side changes to it:
damage and healing, rests, spell slots, feature uses, inventory and notes.
Every change is saved right away.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&storageFlag, "storage", "", "storage backend: sqlite or redis (overrides RPG_SHEET_STORAGE)")
	pf.StringVar(&sqlitePath, "db", "", "sqlite database file (overrides RPG_SHEET_SQLITE_PATH)")
	pf.StringVar(&redisAddr, "redis", "", "redis address (overrides RPG_SHEET_REDIS_ADDR)")
	pf.StringVar(&storageKey, "key", "", "storage key of the record (overrides RPG_SHEET_STORAGE_KEY)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides RPG_SHEET_LOG_LEVEL)")
	pf.BoolVarP(&assumeYes, "yes", "y", false, "answer yes to every confirmation prompt")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(damageCmd)
	rootCmd.AddCommand(healCmd)
	rootCmd.AddCommand(tempHPCmd)
	rootCmd.AddCommand(maxHPCmd)
	rootCmd.AddCommand(deathSavesCmd)
	rootCmd.AddCommand(hitDieCmd)
	rootCmd.AddCommand(restCmd)
	rootCmd.AddCommand(featureCmd)
	rootCmd.AddCommand(slotCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(spellCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(currencyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(creatureCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(attributeCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(combatCmd)
	rootCmd.AddCommand(bioCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
