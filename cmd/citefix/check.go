package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/citefix/internal/verify"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <markdown_path>",
	Short: "Report reference links whose anchor is missing",
	Long: `Parse a rewritten markdown file and report every #reference-N link that
has no matching <a id="reference-N"> anchor.

Exits with status 3 when dangling links are found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitError, "reading markdown: %v", err)
	}

	report := verify.Check(data)

	if humanOutput {
		outputHuman("%s", formatCheckHuman(report))
	} else if err := outputJSON(report); err != nil {
		return err
	}

	if !report.OK() {
		os.Exit(ExitDataError)
	}
	return nil
}
