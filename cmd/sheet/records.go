package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

var (
	resetToDefaults bool
	exportOut       string
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the sheet with a blank character",
	Long: `Replace the sheet with a blank character. With --defaults the stored
record is deleted instead and the starting character is shown until the next change.`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
			if resetToDefaults {
				return s.ResetToDefaults(ctx)
			}
			return s.Reset(ctx)
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the sheet to a json file",
	Args:  exactArgs(0),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the sheet with an exported json file",
	Args:  exactArgs(1),
	RunE:  runImport,
}

func init() {
	resetCmd.Flags().BoolVar(&resetToDefaults, "defaults", false, "delete the stored record and start over from the starting character")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, - for stdout (default: named after the character)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, done, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer done()

	out, err := s.Export()
	if err != nil {
		return err
	}

	if exportOut == "-" {
		_, err = cmd.OutOrStdout().Write(out.Data)
		return err
	}

	path := exportOut
	if path == "" {
		path = out.FileName
	}
	path = filepath.Clean(path)
	if err := os.WriteFile(path, out.Data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write export").WithMeta("path", path)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read import file").
			WithMeta("path", args[0])
	}

	return mutate(cmd, func(ctx context.Context, s *sheet.Session) (*sheet.Result, error) {
		return s.Import(ctx, &sheet.ImportInput{Data: data})
	})
}
