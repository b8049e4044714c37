// Package main provides the citefix CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matsen/citefix/internal/config"
	"github.com/matsen/citefix/internal/pipeline"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "citefix <markdown_path> [pdf_path] [output_path]",
	Short: "Turn exported chat citation markers into numbered reference links",
	Long: `citefix repairs the citations in a markdown export of a chat session.

Inline markers such as citeturn14search0turn25view0 are replaced with
numbered superscript links, one number per cited source, and a reference
list recovered from the PDF export of the same session is appended.

The PDF defaults to gpt.pdf next to the markdown file and the output to
fixed_<markdown name> in the same directory. Both defaults can be changed
in ~/.config/citefix/config.yml or via CITEFIX_PDF_NAME and
CITEFIX_OUTPUT_PREFIX.`,
	Args:          cobra.MaximumNArgs(3),
	RunE:          runFix,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// reportError prints err unless it is a usage error, whose message has
// already been shown, and returns the exit code.
func reportError(w io.Writer, err error) int {
	if errors.Is(err, pipeline.ErrUsage) {
		return ExitError
	}
	// Print the error since we have SilenceErrors: true
	fmt.Fprintf(w, "Error: %s\n", err)
	return ExitError
}

// loadConfig loads .env and the config file.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.Load()
}

// mustLoadConfig loads .env and the config file, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}
