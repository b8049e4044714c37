// Package verify checks that a rewritten transcript's in-document reference
// links resolve to anchors in its reference section.
package verify

import (
	"bytes"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/matsen/citefix/internal/citation"
)

var anchorPattern = regexp.MustCompile(`<a\s[^>]*\bid\s*=\s*"` + regexp.QuoteMeta(citation.AnchorPrefix) + `(\d+)"`)

// Report summarizes the reference links found in a document.
type Report struct {
	Links    []int `json:"links"`    // numbers targeted by #reference-N links
	Anchors  []int `json:"anchors"`  // numbers with a reference-N anchor
	External int   `json:"external"` // links pointing at http(s) URLs
	Dangling []int `json:"dangling"` // linked numbers with no anchor
}

// OK reports whether every in-document reference link resolves.
func (r Report) OK() bool {
	return len(r.Dangling) == 0
}

// Check parses source as GitHub-flavoured markdown and cross-checks its
// reference links against its anchors. Links inside code are not links and
// are ignored.
func Check(source []byte) Report {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	links := make(map[int]bool)
	anchors := make(map[int]bool)
	external := 0

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Link:
			dest := string(node.Destination)
			if num, ok := anchorTarget(dest); ok {
				links[num] = true
			} else if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
				external++
			}
		case *ast.RawHTML:
			var buf bytes.Buffer
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				buf.Write(seg.Value(source))
			}
			collectAnchors(buf.Bytes(), anchors)
		case *ast.HTMLBlock:
			var buf bytes.Buffer
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(source))
			}
			if node.HasClosure() {
				buf.Write(node.ClosureLine.Value(source))
			}
			collectAnchors(buf.Bytes(), anchors)
		}
		return ast.WalkContinue, nil
	})

	report := Report{
		Links:    sortedKeys(links),
		Anchors:  sortedKeys(anchors),
		External: external,
		Dangling: []int{},
	}
	for _, num := range report.Links {
		if !anchors[num] {
			report.Dangling = append(report.Dangling, num)
		}
	}
	return report
}

// anchorTarget parses "#reference-N".
func anchorTarget(dest string) (int, bool) {
	rest, ok := strings.CutPrefix(dest, "#"+citation.AnchorPrefix)
	if !ok {
		return 0, false
	}
	num, err := strconv.Atoi(rest)
	if err != nil || num <= 0 {
		return 0, false
	}
	return num, true
}

func collectAnchors(html []byte, into map[int]bool) {
	for _, m := range anchorPattern.FindAllSubmatch(html, -1) {
		if num, err := strconv.Atoi(string(m[1])); err == nil {
			into[num] = true
		}
	}
}

func sortedKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
