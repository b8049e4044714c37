// Package pipeline sequences reference extraction, citation rewriting and
// reference section output for one transcript.
package pipeline

import (
	"fmt"
	"os"

	"github.com/matsen/citefix/internal/citation"
	"github.com/matsen/citefix/internal/config"
	"github.com/matsen/citefix/internal/export"
	"github.com/matsen/citefix/internal/pdf"
	"github.com/matsen/citefix/internal/reference"
)

// extractReferences is swapped out in tests that have no PDF fixture.
var extractReferences = pdf.Extract

// Summary reports what a run produced.
type Summary struct {
	Paths      Paths `json:"paths"`
	References int   `json:"references"` // entries extracted from the PDF
	Indexed    int   `json:"indexed"`    // entries with a reference number
	Citations  int   `json:"citations"`  // atomic citations numbered
	Used       []int `json:"used"`       // reference numbers allocated
}

// Transform rewrites the citations in markdown and appends the reference
// section. It performs no I/O.
func Transform(markdown string, list reference.List, index reference.Index, heading string) (string, citation.Result) {
	res := citation.Rewrite(markdown, index)
	return res.Text + export.ReferenceSection(list, index, heading), res
}

// Run reads the markdown, extracts the PDF's references, rewrites the
// citations and writes the output. The output file is only written once
// every earlier stage has succeeded.
func Run(paths Paths, cfg *config.Config, status *Reporter) (*Summary, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if status == nil {
		status = NewReporter(nil)
	}

	status.Step("Reading markdown:", "%s", paths.Markdown)
	data, err := os.ReadFile(paths.Markdown)
	if err != nil {
		return nil, &FileAccessError{Op: "read markdown", Path: paths.Markdown, Err: err}
	}

	status.Step("Extracting references from PDF:", "%s", paths.PDF)
	ex, err := extractReferences(paths.PDF)
	if err != nil {
		return nil, &FileAccessError{Op: "extract references", Path: paths.PDF, Err: err}
	}
	list, index := ex.List, ex.Index
	status.Detail("extracted %d reference entries", len(list))
	status.Detail("%d of them numbered", len(index))
	if ex.Unrecognised() {
		status.Warn("%d page(s) mention a URL but no title/URL pairs were recognised", ex.URLPages)
	}

	status.Step("Rewriting citations...", "")
	out, res := Transform(string(data), list, index, cfg.Heading)
	status.Detail("processed %d citation markers", res.Total)

	status.Step("Writing output:", "%s", paths.Output)
	if err := os.WriteFile(paths.Output, []byte(out), 0644); err != nil {
		return nil, &FileAccessError{Op: "write output", Path: paths.Output, Err: err}
	}

	summary := &Summary{
		Paths:      paths,
		References: len(list),
		Indexed:    len(index),
		Citations:  res.Total,
		Used:       res.Used,
	}
	status.Step("Done!", "%s", summary)

	return summary, nil
}

// String formats the summary as a single human-readable line.
func (s *Summary) String() string {
	return fmt.Sprintf("%d references (%d numbered), %d citations -> %s",
		s.References, s.Indexed, s.Citations, s.Paths.Output)
}
