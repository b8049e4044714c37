// Package citation rewrites exported citation tokens into numbered links.
package citation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/matsen/citefix/internal/reference"
)

// Private-use characters the chat UI wraps around citation regions.
const (
	regionStart = "\ue202"
	regionEnd   = "\ue201"
)

// AnchorPrefix prefixes the in-document anchor of a reference number.
const AnchorPrefix = "reference-"

var (
	// tokenPattern matches a marker keyword followed by one or more atoms,
	// e.g. citeturn14search0turn25view0.
	tokenPattern = regexp.MustCompile(`cite(?:turn\d+(?:search|view)\d+)+`)

	// atomPattern matches a single turn/kind/index triple inside a token.
	atomPattern = regexp.MustCompile(`turn(\d+)(search|view)(\d+)`)

	regionStripper = strings.NewReplacer(regionStart, "", regionEnd, "")
)

// Atom is one turn/kind/index triple of a citation token.
// Only its position in the token matters.
type Atom struct {
	Turn string
	Kind string // search or view
	Sub  string
}

// ParseToken decomposes a raw token into its atoms in order.
func ParseToken(token string) []Atom {
	matches := atomPattern.FindAllStringSubmatch(token, -1)
	atoms := make([]Atom, 0, len(matches))
	for _, m := range matches {
		atoms = append(atoms, Atom{Turn: m[1], Kind: m[2], Sub: m[3]})
	}
	return atoms
}

// Result is the outcome of one rewrite pass.
type Result struct {
	Text  string
	Used  []int // reference numbers allocated, ascending
	Total int   // final counter value
}

// Rewriter holds the state of a single rewrite pass: the running counter,
// the memo of already rewritten tokens and the set of numbers used.
// A Rewriter is not safe for concurrent use.
type Rewriter struct {
	index   reference.Index
	counter int
	memo    map[string]string
	used    map[int]bool
}

// NewRewriter starts a pass that links numbers found in index to their URLs.
func NewRewriter(index reference.Index) *Rewriter {
	return &Rewriter{
		index: index,
		memo:  make(map[string]string),
		used:  make(map[int]bool),
	}
}

// Counter returns the number of atoms allocated so far.
func (rw *Rewriter) Counter() int {
	return rw.counter
}

// Rewrite replaces every citation token in text. Calling Rewrite again on
// the same Rewriter continues numbering where the previous call stopped.
func (rw *Rewriter) Rewrite(text string) Result {
	text = regionStripper.Replace(text)

	matches := tokenPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return rw.result(text)
	}

	var out strings.Builder
	out.Grow(len(text))
	last := 0
	for _, m := range matches {
		out.WriteString(text[last:m[0]])
		out.WriteString(rw.replace(text[m[0]:m[1]]))
		last = m[1]
	}
	out.WriteString(text[last:])

	return rw.result(out.String())
}

// replace returns the links for a single token, allocating one number per atom
// unless the identical token was seen earlier in the pass.
func (rw *Rewriter) replace(token string) string {
	if cached, ok := rw.memo[token]; ok {
		return cached
	}

	atoms := ParseToken(token)
	if len(atoms) == 0 {
		return token
	}

	var links strings.Builder
	for range atoms {
		rw.counter++
		n := rw.counter
		rw.used[n] = true
		links.WriteString(rw.link(n))
	}

	replacement := links.String()
	rw.memo[token] = replacement
	return replacement
}

// link renders reference n as a superscript link, to its URL when indexed
// and to the in-document anchor otherwise.
func (rw *Rewriter) link(n int) string {
	target := "#" + Anchor(n)
	if e, ok := rw.index.Lookup(n); ok {
		target = e.URL
	}
	return fmt.Sprintf("<sup>[[%d]](%s)</sup>", n, target)
}

func (rw *Rewriter) result(text string) Result {
	used := make([]int, 0, len(rw.used))
	for n := range rw.used {
		used = append(used, n)
	}
	sort.Ints(used)
	return Result{Text: text, Used: used, Total: rw.counter}
}

// Anchor returns the in-document anchor id for reference n.
func Anchor(n int) string {
	return fmt.Sprintf("%s%d", AnchorPrefix, n)
}

// Rewrite runs a fresh pass over text.
func Rewrite(text string, index reference.Index) Result {
	return NewRewriter(index).Rewrite(text)
}
