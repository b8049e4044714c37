package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/matsen/citefix/internal/export"
	"github.com/matsen/citefix/internal/verify"
)

// RefsTitleMaxLen bounds titles in human-readable reference listings.
const RefsTitleMaxLen = 70

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	ConfigFile   string `json:"config_file"`
	PDFName      string `json:"pdf_name"`
	OutputPrefix string `json:"output_prefix"`
	Heading      string `json:"heading"`
}

// RefsResponse is the response for the refs command.
type RefsResponse struct {
	Count      int                    `json:"count"`
	References []export.NumberedEntry `json:"references"`
}

// formatReferencesHuman formats numbered references one per block.
func formatReferencesHuman(refs []export.NumberedEntry) string {
	if len(refs) == 0 {
		return "No references found\n"
	}

	var sb strings.Builder
	for _, r := range refs {
		sb.WriteString(fmt.Sprintf("[%d] %s\n", r.Number, truncateString(r.Title, RefsTitleMaxLen)))
		sb.WriteString(fmt.Sprintf("    %s\n", r.URL))
	}
	return sb.String()
}

// formatCheckHuman formats an anchor check report.
func formatCheckHuman(r verify.Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d in-document reference links, %d anchors, %d external links\n",
		len(r.Links), len(r.Anchors), r.External))
	if r.OK() {
		sb.WriteString("All reference links resolve\n")
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("Dangling: %s\n", formatNumbers(r.Dangling)))
	return sb.String()
}

// formatNumbers formats reference numbers as "#1, #2".
func formatNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("#%d", n)
	}
	return strings.Join(parts, ", ")
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
