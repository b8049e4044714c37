package export

import (
	"fmt"
	"strings"

	"github.com/matsen/citefix/internal/citation"
	"github.com/matsen/citefix/internal/reference"
)

// ToBibTeX converts reference n to a BibTeX @misc entry keyed by its anchor.
func ToBibTeX(n int, e reference.Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@misc{%s,\n", bibKey(n)))
	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(e.Title)))

	// URLs are left unescaped; the url field is read verbatim.
	b.WriteString(fmt.Sprintf("  url = {%s},\n", e.URL))

	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts a numbered list to BibTeX, numbering from 1.
func ToBibTeXList(list reference.List) string {
	var entries []string
	for i, e := range list {
		entries = append(entries, ToBibTeX(i+1, e))
	}
	return strings.Join(entries, "\n")
}

// bibKey derives the citation key from the in-document anchor.
func bibKey(n int) string {
	return strings.ReplaceAll(citation.Anchor(n), "-", "")
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
