package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/citefix/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration after applying the config file,
.env and environment overrides.

Keys (config.yml / environment):
  pdf_name       CITEFIX_PDF_NAME       PDF looked up next to the markdown (default gpt.pdf)
  output_prefix  CITEFIX_OUTPUT_PREFIX  Prefix for the default output file (default fixed_)
  heading        CITEFIX_HEADING        Reference section heading (default References)`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	path := config.GlobalConfigPath()

	if humanOutput {
		fmt.Printf("config-file:   %s\n", path)
		fmt.Printf("pdf-name:      %s\n", cfg.PDFName)
		fmt.Printf("output-prefix: %s\n", cfg.OutputPrefix)
		fmt.Printf("heading:       %s\n", cfg.Heading)
		return nil
	}

	return outputJSON(ConfigResponse{
		ConfigFile:   path,
		PDFName:      cfg.PDFName,
		OutputPrefix: cfg.OutputPrefix,
		Heading:      cfg.Heading,
	})
}
