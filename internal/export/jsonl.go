package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matsen/citefix/internal/reference"
)

// NumberedEntry is a reference with its assigned number, as written to JSON.
type NumberedEntry struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// Numbered pairs each list entry with its 1-based number.
func Numbered(list reference.List) []NumberedEntry {
	out := make([]NumberedEntry, 0, len(list))
	for i, e := range list {
		out = append(out, NumberedEntry{Number: i + 1, Title: e.Title, URL: e.URL})
	}
	return out
}

// WriteJSONL writes one JSON object per reference.
func WriteJSONL(w io.Writer, list reference.List) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, e := range Numbered(list) {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encoding reference %d: %w", e.Number, err)
		}
	}
	return nil
}
