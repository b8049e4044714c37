package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/citefix/internal/export"
	"github.com/matsen/citefix/internal/pdf"
)

var (
	refsJSONL  bool
	refsBibTeX bool
)

func init() {
	refsCmd.Flags().BoolVar(&refsJSONL, "jsonl", false, "Output one JSON object per reference")
	refsCmd.Flags().BoolVar(&refsBibTeX, "bibtex", false, "Output references as BibTeX @misc entries")
	refsCmd.MarkFlagsMutuallyExclusive("jsonl", "bibtex")
	rootCmd.AddCommand(refsCmd)
}

var refsCmd = &cobra.Command{
	Use:   "refs <pdf_path>",
	Short: "List the references found in a PDF export",
	Long: `List the title/URL pairs recovered from a PDF export, numbered in the
order they will be assigned to citations.

Examples:
  citefix refs gpt.pdf
  citefix refs gpt.pdf --human
  citefix refs gpt.pdf --bibtex > refs.bib`,
	Args: cobra.ExactArgs(1),
	RunE: runRefs,
}

func runRefs(cmd *cobra.Command, args []string) error {
	list, _, err := pdf.ExtractReferences(args[0])
	if err != nil {
		exitWithError(ExitError, "extracting references from %s: %v", args[0], err)
	}

	switch {
	case refsBibTeX:
		// Note: BibTeX is always text output, never JSON
		fmt.Print(export.ToBibTeXList(list))
		return nil
	case refsJSONL:
		return export.WriteJSONL(os.Stdout, list)
	case humanOutput:
		fmt.Print(formatReferencesHuman(export.Numbered(list)))
		return nil
	default:
		return outputJSON(RefsResponse{
			Count:      len(list),
			References: export.Numbered(list),
		})
	}
}
