package pdf

import (
	"strings"
	"unicode"

	"github.com/matsen/citefix/internal/reference"
)

// scanState is the line classifier's state.
type scanState int

const (
	// emittedPair: no title is pending, either at the start or because a
	// URL line just closed a title/URL pair.
	emittedPair scanState = iota
	// accumulatingTitle: one or more title lines are pending.
	accumulatingTitle
)

func (s scanState) String() string {
	switch s {
	case accumulatingTitle:
		return "accumulating title"
	case emittedPair:
		return "emitted pair"
	default:
		return "unknown"
	}
}

// urlSchemes start a URL that may follow title text on the same line.
var urlSchemes = []string{"https://", "http://"}

// lineScanner groups consecutive non-URL lines into the title of the URL
// line that follows them. The zero value starts in emittedPair, with no
// title pending.
type lineScanner struct {
	state   scanState
	pending []string
	list    reference.List
}

// feed classifies one line of PDF text.
func (s *lineScanner) feed(line string) {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		// blank
	case isDigits(line):
		// stray list numbering
	case strings.HasPrefix(line, urlMarker):
		s.emit(line)
	default:
		if i := innerURL(line); i > 0 {
			s.feed(line[:i])
			s.feed(line[i:])
			return
		}
		s.pending = append(s.pending, line)
		s.state = accumulatingTitle
	}
}

// emit closes the pending title with url. A URL with no pending title
// becomes its own title.
func (s *lineScanner) emit(url string) {
	title := url
	if s.state == accumulatingTitle {
		title = strings.Join(s.pending, " ")
	}
	s.list, _ = s.list.Add(reference.Entry{Title: title, URL: url})
	s.pending = s.pending[:0]
	s.state = emittedPair
}

// ParseReferences extracts title/URL pairs from PDF text, deduplicated by URL
// in first-seen order. Title lines left pending at the end are discarded.
func ParseReferences(text string) reference.List {
	var s lineScanner
	for _, line := range strings.Split(text, "\n") {
		s.feed(line)
	}
	return s.list
}

// innerURL returns the offset of the first URL scheme in line, or -1.
// Title text and its URL end up on one line when the PDF moves to the next
// line without starting a new text object.
func innerURL(line string) int {
	first := -1
	for _, scheme := range urlSchemes {
		if i := strings.Index(line, scheme); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	return first
}

// isDigits reports whether line is non-empty and made only of digits.
func isDigits(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
