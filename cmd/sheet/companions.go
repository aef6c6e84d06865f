package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

var (
	creatureName  string
	creatureType  string
	creatureMaxHP int
	creatureAC    int
	creatureSpeed string
	creatureNotes string

	noteTitle   string
	noteContent string
	noteTags    string
	noteOutDir  string
)

var creatureCmd = &cobra.Command{
	Use:   "creature",
	Short: "Manage companions and summons",
}

var creatureHPCmd = &cobra.Command{
	Use:   "hp <id> <delta>",
	Short: "Change a creature's hit points by delta",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta := engine.ParseIntOr(args[1], 0)
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.ChangeCreatureHP(ctx, &sheet.ChangeCreatureHPInput{CreatureID: args[0], Delta: delta})
		})
	},
}

var creatureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a creature",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		cr := entity.Creature{
			Name:  creatureName,
			Type:  creatureType,
			AC:    creatureAC,
			Speed: creatureSpeed,
			Notes: creatureNotes,
		}
		if creatureMaxHP > 0 {
			cr.HP = entity.CreatureHP{Current: creatureMaxHP, Max: creatureMaxHP}
		}
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.AddCreature(ctx, &sheet.AddCreatureInput{Creature: cr})
		})
	},
}

var creatureDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a creature",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.DeleteCreature(ctx, &sheet.DeleteCreatureInput{CreatureID: args[0]})
		})
	},
}

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage session notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Start a note for the next session",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.AddNote(ctx)
		})
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a note's title, content or tags",
	Args:  exactArgs(1),
	RunE:  runNoteEdit,
}

var noteExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write a note's content to a text file",
	Args:  exactArgs(1),
	RunE:  runNoteExport,
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a note",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			return s.DeleteNote(ctx, &sheet.DeleteNoteInput{NoteID: args[0]})
		})
	},
}

var noteSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find notes whose title or content mention query",
	Args:  minimumArgs(1),
	RunE:  runNoteSearch,
}

func init() {
	// Deltas may be negative; stop flag parsing at the first argument
	creatureHPCmd.Flags().SetInterspersed(false)

	creatureAddCmd.Flags().StringVar(&creatureName, "name", "", "creature name")
	creatureAddCmd.Flags().StringVar(&creatureType, "type", "", "creature type")
	creatureAddCmd.Flags().IntVar(&creatureMaxHP, "max-hp", 0, "maximum hit points")
	creatureAddCmd.Flags().IntVar(&creatureAC, "ac", 0, "armor class")
	creatureAddCmd.Flags().StringVar(&creatureSpeed, "speed", "", "speed, e.g. 12m")
	creatureAddCmd.Flags().StringVar(&creatureNotes, "notes", "", "free text")
	_ = creatureAddCmd.MarkFlagRequired("name")

	creatureCmd.AddCommand(creatureHPCmd)
	creatureCmd.AddCommand(creatureAddCmd)
	creatureCmd.AddCommand(creatureDeleteCmd)

	noteEditCmd.Flags().StringVar(&noteTitle, "title", "", "new title")
	noteEditCmd.Flags().StringVar(&noteContent, "content", "", "new content")
	noteEditCmd.Flags().StringVar(&noteTags, "tags", "", "comma separated tags")
	noteExportCmd.Flags().StringVar(&noteOutDir, "dir", ".", "directory to write the file to")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteExportCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteSearchCmd)
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	s, done, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer done()

	c, err := s.Character()
	if err != nil {
		return err
	}
	idx, ok := c.FindNoteIndex(args[0])
	if !ok {
		return errors.NotFoundf("note %s not found", args[0])
	}

	n := c.Notes[idx]
	flags := cmd.Flags()
	if flags.Changed("title") {
		n.Title = noteTitle
	}
	if flags.Changed("content") {
		n.Content = noteContent
	}
	if flags.Changed("tags") {
		n.Tags = splitTags(noteTags)
	}

	result, err := s.UpdateNote(cmd.Context(), &sheet.UpdateNoteInput{Note: n})
	if err != nil {
		return err
	}
	report(cmd, result)
	return nil
}

func splitTags(text string) []string {
	var tags []string
	for _, tag := range strings.Split(text, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func runNoteExport(cmd *cobra.Command, args []string) error {
	s, done, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer done()

	out, err := s.ExportNote(&sheet.ExportNoteInput{NoteID: args[0]})
	if err != nil {
		return err
	}

	path := filepath.Join(noteOutDir, out.FileName)
	if err := os.WriteFile(path, out.Data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write note").WithMeta("path", path)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runNoteSearch(cmd *cobra.Command, args []string) error {
	s, done, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer done()

	c, err := s.Character()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, n := range engine.SearchNotes(c.Notes, strings.Join(args, " ")) {
		fmt.Fprintf(out, "%s\t%s\t%s\n", n.ID, n.Date, n.Title)
	}
	return nil
}
