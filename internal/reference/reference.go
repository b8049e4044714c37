// Package reference defines the core domain types for transcript references.
package reference

import "sort"

// Entry is one title/URL pair recovered from a transcript's reference list.
// The URL is the entry's identity.
type Entry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// List is an ordered set of entries in first-encountered order.
// No two entries share a URL.
type List []Entry

// Contains reports whether an entry with the given URL is already present.
func (l List) Contains(url string) bool {
	for _, e := range l {
		if e.URL == url {
			return true
		}
	}
	return false
}

// Add appends e unless its URL is already present.
// Returns the (possibly unchanged) list and whether e was added.
func (l List) Add(e Entry) (List, bool) {
	if l.Contains(e.URL) {
		return l, false
	}
	return append(l, e), true
}

// Index maps 1-based reference numbers to entries.
type Index map[int]Entry

// NewIndex numbers the entries of l starting at 1.
func NewIndex(l List) Index {
	idx := make(Index, len(l))
	for i, e := range l {
		idx[i+1] = e
	}
	return idx
}

// Lookup returns the entry numbered n.
func (idx Index) Lookup(n int) (Entry, bool) {
	e, ok := idx[n]
	return e, ok
}

// Numbers returns the index keys in ascending order.
func (idx Index) Numbers() []int {
	nums := make([]int, 0, len(idx))
	for n := range idx {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
