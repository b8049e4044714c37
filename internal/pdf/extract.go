// Package pdf recovers the reference list from a transcript's PDF export.
package pdf

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/matsen/citefix/internal/reference"
)

// urlMarker is the substring that marks a page as carrying reference data.
const urlMarker = "http"

// lineTolerance is how far apart, in points, two glyph baselines may be and
// still count as one visual line.
const lineTolerance = 1.0

// ErrUnreadable is returned when the PDF library fails while decoding pages.
var ErrUnreadable = errors.New("unreadable pdf")

// Extraction is the reference list read from a PDF along with page counts
// for reporting.
type Extraction struct {
	List     reference.List
	Index    reference.Index
	Pages    int // non-null pages read
	URLPages int // pages containing a URL
}

// Unrecognised reports whether the PDF has URL-bearing pages but no
// title/URL pair could be read from them.
func (e *Extraction) Unrecognised() bool {
	return e.URLPages > 0 && len(e.List) == 0
}

// Extract reads the reference list from the PDF at filePath.
// A PDF without any URL-bearing page yields an empty list, not an error.
func Extract(filePath string) (*Extraction, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	pages, err := collectPages(r.NumPage(), func(i int) (string, bool, error) {
		page := r.Page(i)
		if page.V.IsNull() {
			return "", false, nil
		}
		text, err := pageText(page)
		return text, true, err
	})
	if err != nil {
		return nil, err
	}

	list := ParseReferences(ReferenceText(pages))
	return &Extraction{
		List:     list,
		Index:    reference.NewIndex(list),
		Pages:    len(pages),
		URLPages: countURLPages(pages),
	}, nil
}

// ExtractReferences reads the reference list from the PDF at filePath.
func ExtractReferences(filePath string) (reference.List, reference.Index, error) {
	ex, err := Extract(filePath)
	if err != nil {
		return nil, nil, err
	}
	return ex.List, ex.Index, nil
}

// collectPages calls text for pages 1..n in order and keeps the text of the
// pages it reports as present. Panics raised while decoding are converted
// to ErrUnreadable.
func collectPages(n int, text func(i int) (string, bool, error)) (pages []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrUnreadable, p)
		}
	}()

	for i := 1; i <= n; i++ {
		s, ok, err := text(i)
		if err != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", i, err)
		}
		if !ok {
			continue
		}
		pages = append(pages, s)
	}

	return pages, nil
}

// pageText returns the page's text with one line per visual line. Pages the
// positional decoder cannot handle fall back to the library's plain text.
func pageText(page pdf.Page) (string, error) {
	if text, ok := layoutText(page); ok && strings.TrimSpace(text) != "" {
		return text, nil
	}
	return page.GetPlainText(nil)
}

// layoutText decodes the page's glyphs and breaks lines wherever the
// baseline moves, so text placed with Td inside one text object still
// comes out on separate lines.
func layoutText(page pdf.Page) (text string, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			text, ok = "", false
		}
	}()
	return joinGlyphs(page.Content().Text), true
}

// joinGlyphs lays glyphs out in content-stream order. A baseline change
// starts a new line and a horizontal gap wider than a quarter of the font
// size becomes a space.
func joinGlyphs(glyphs []pdf.Text) string {
	var builder strings.Builder
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			switch {
			case math.Abs(g.Y-prev.Y) > lineTolerance:
				builder.WriteString("\n")
			case g.S != " " && prev.S != " " && g.X > prev.X+prev.W+prev.FontSize/4:
				builder.WriteString(" ")
			}
		}
		builder.WriteString(g.S)
	}
	return builder.String()
}

// ReferenceText concatenates the pages that contain a URL, each followed by
// a newline. Pages without a URL are assumed to carry no references.
func ReferenceText(pages []string) string {
	var builder strings.Builder
	for _, text := range pages {
		if !strings.Contains(text, urlMarker) {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String()
}

func countURLPages(pages []string) int {
	n := 0
	for _, text := range pages {
		if strings.Contains(text, urlMarker) {
			n++
		}
	}
	return n
}
