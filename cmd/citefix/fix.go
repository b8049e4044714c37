package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matsen/citefix/internal/config"
	"github.com/matsen/citefix/internal/pipeline"
)

func runFix(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// A broken config file must not hide the usage message.
		cfg, err := loadConfig()
		if err != nil {
			cfg = config.Default()
		}
		printUsage(cmd.OutOrStdout(), cfg)
		return pipeline.ErrUsage
	}

	cfg := mustLoadConfig()
	paths, err := pipeline.ResolvePaths(args, cfg)
	if err != nil {
		if errors.Is(err, pipeline.ErrUsage) {
			printUsage(cmd.OutOrStdout(), cfg)
		}
		return err
	}

	_, err = pipeline.Run(paths, cfg, pipeline.NewReporter(cmd.OutOrStdout()))
	return err
}

// printUsage writes the short usage message shown when no markdown path is given.
func printUsage(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Usage: citefix <markdown_path> [pdf_path] [output_path]")
	fmt.Fprintf(w, "  pdf_path defaults to %s in the markdown file's directory\n", cfg.PDFName)
	fmt.Fprintf(w, "  output_path defaults to %s<markdown name> in the same directory\n", cfg.OutputPrefix)
}
