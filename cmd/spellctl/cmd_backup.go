package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of the word store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
			}

			if dir := filepath.Dir(output); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}

			if err := a.backup.Export(cmd.Context(), output); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported word store to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a JSON backup",
		Long: `Restores a backup written by export.

By default words missing from the store are merged in and existing history is kept.
With --replace the whole store is overwritten by the backup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.backup.Import(cmd.Context(), args[0], replace)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			if result.Replaced {
				fmt.Fprintf(cmd.OutOrStdout(), "Replaced word store with %d words\n", result.Words)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Merged %d new words\n", result.Words)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Overwrite the word store instead of merging")
	return cmd
}
