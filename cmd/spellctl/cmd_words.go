package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var sentence string

	cmd := &cobra.Command{
		Use:   "add [words...]",
		Short: "Add words to the practice list",
		Long: `Adds one or more words. Arguments may themselves hold comma separated words.

Example:
  spellctl add necessary "rhythm, separate" --sentence "It is necessary to rest."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.words.AddText(cmd.Context(), strings.Join(args, "\n"), sentence)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d of %d words\n", result.Added, result.Parsed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sentence, "sentence", "s", "", "Example sentence for the first word")
	return cmd
}

func newImportCSVCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import-csv <file>",
		Short: "Add the words of a CSV or text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.words.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new words (%d found in %s)\n", result.Added, result.Parsed, args[0])
			if result.Skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d invalid words\n", result.Skipped)
			}
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <word>",
		Short: "Delete a word and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.words.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", strings.ToLower(strings.TrimSpace(args[0])))
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List words with their practice history",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.words.History(cmd.Context(), search)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No words yet")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WORD\tCORRECT\tINCORRECT\tREVIEW\tMISTAKES\tSENTENCE")
			for _, e := range entries {
				review := ""
				if e.Misspelled {
					review = "yes"
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n",
					e.Word, e.Record.Correct, e.Record.Incorrect, review,
					strings.Join(e.Record.Mistakes, ","), e.Record.ExampleSentence)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Only list words containing this text")
	return cmd
}

func newSentenceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sentence <word> [sentence]",
		Short: "Set or clear the example sentence of a word",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence := ""
			if len(args) == 2 {
				sentence = args[1]
			}
			if err := a.words.SetExampleSentence(cmd.Context(), args[0], sentence); err != nil {
				return err
			}
			if sentence == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared sentence for %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated sentence for %s\n", args[0])
			}
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every word and all history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear without --yes")
			}
			if err := a.words.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting all data")
	return cmd
}
