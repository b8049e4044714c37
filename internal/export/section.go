// Package export renders extracted references for output documents.
package export

import (
	"fmt"
	"strings"

	"github.com/matsen/citefix/internal/citation"
	"github.com/matsen/citefix/internal/reference"
)

// DefaultHeading is the section heading used when none is configured.
const DefaultHeading = "References"

// ReferenceSection renders the anchored reference list appended to a
// rewritten document. Index numbers are emitted in ascending order; when the
// index is empty the list itself is numbered from 1.
func ReferenceSection(list reference.List, index reference.Index, heading string) string {
	if heading == "" {
		heading = DefaultHeading
	}

	var b strings.Builder
	b.WriteString("\n\n---\n\n## ")
	b.WriteString(heading)
	b.WriteString("\n\n")

	if len(index) > 0 {
		for _, n := range index.Numbers() {
			writeEntry(&b, n, index[n])
		}
		return b.String()
	}

	for i, e := range list {
		writeEntry(&b, i+1, e)
	}
	return b.String()
}

// writeEntry writes one anchored, bold-numbered entry.
func writeEntry(b *strings.Builder, n int, e reference.Entry) {
	fmt.Fprintf(b, "<a id=\"%s\"></a>\n", citation.Anchor(n))
	fmt.Fprintf(b, "**[%d]** [%s](%s)\n\n", n, e.Title, e.URL)
}
