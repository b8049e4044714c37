package citation

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/matsen/citefix/internal/reference"
)

func TestRewrite_NoTokensIsIdentity(t *testing.T) {
	text := "# Title\n\nPlain paragraph with a [link](https://example.com) and no citations.\n"

	got := Rewrite(text, nil)
	if got.Text != text {
		t.Errorf("Rewrite() text = %q, want unchanged %q", got.Text, text)
	}
	if got.Total != 0 {
		t.Errorf("Rewrite() total = %d, want 0", got.Total)
	}
	if len(got.Used) != 0 {
		t.Errorf("Rewrite() used = %v, want empty", got.Used)
	}
}

func TestRewrite_EmptyIndexFallsBackToAnchors(t *testing.T) {
	got := Rewrite("Hello citeturn1search0turn1search1 world", reference.Index{})

	want := "Hello <sup>[[1]](#reference-1)</sup><sup>[[2]](#reference-2)</sup> world"
	if got.Text != want {
		t.Errorf("Rewrite() text = %q, want %q", got.Text, want)
	}
	if got.Total != 2 {
		t.Errorf("Rewrite() total = %d, want 2", got.Total)
	}
	if !reflect.DeepEqual(got.Used, []int{1, 2}) {
		t.Errorf("Rewrite() used = %v, want [1 2]", got.Used)
	}
}

func TestRewrite_IndexedNumbersLinkToURL(t *testing.T) {
	idx := reference.Index{1: {Title: "Example", URL: "https://example.com"}}

	got := Rewrite("Hello citeturn1search0turn1search1 world", idx)

	want := "Hello <sup>[[1]](https://example.com)</sup><sup>[[2]](#reference-2)</sup> world"
	if got.Text != want {
		t.Errorf("Rewrite() text = %q, want %q", got.Text, want)
	}
}

func TestRewrite_StripsRegionMarkers(t *testing.T) {
	text := "Claim \ue202citeturn3view0\ue201 done.\ue201"

	got := Rewrite(text, nil)

	want := "Claim <sup>[[1]](#reference-1)</sup> done."
	if got.Text != want {
		t.Errorf("Rewrite() text = %q, want %q", got.Text, want)
	}
	if strings.ContainsAny(got.Text, "\ue201\ue202") {
		t.Error("Rewrite() left private-use markers in output")
	}
}

func TestRewrite_MarkersStrippedWithoutTokens(t *testing.T) {
	got := Rewrite("a\ue202b\ue201c", nil)
	if got.Text != "abc" {
		t.Errorf("Rewrite() text = %q, want %q", got.Text, "abc")
	}
	if got.Total != 0 {
		t.Errorf("Rewrite() total = %d, want 0", got.Total)
	}
}

func TestRewrite_KAtomsAllocateKNumbersInOrder(t *testing.T) {
	tests := []struct {
		name  string
		token string
		k     int
	}{
		{"one atom", "citeturn0search0", 1},
		{"mixed kinds", "citeturn14search0turn25view0", 2},
		{"five atoms", "citeturn1search0turn1search1turn2view3turn9search12turn10view0", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw := NewRewriter(nil)
			// Advance the counter so allocation starts mid-document.
			rw.Rewrite("citeturn99search99")
			start := rw.Counter()

			got := rw.Rewrite("x " + tt.token + " y")

			if got.Total != start+tt.k {
				t.Errorf("total = %d, want %d", got.Total, start+tt.k)
			}
			if n := strings.Count(got.Text, "<sup>"); n != tt.k {
				t.Errorf("output has %d links, want %d", n, tt.k)
			}
			var want strings.Builder
			for i := 1; i <= tt.k; i++ {
				want.WriteString(link(start + i))
			}
			if got.Text != "x "+want.String()+" y" {
				t.Errorf("text = %q, want %q", got.Text, "x "+want.String()+" y")
			}
		})
	}
}

func TestRewrite_RepeatedTokenReusesNumbers(t *testing.T) {
	text := "A citeturn1search0turn1search1. B citeturn2view0. C citeturn1search0turn1search1."

	got := Rewrite(text, nil)

	if got.Total != 3 {
		t.Errorf("Rewrite() total = %d, want 3", got.Total)
	}
	first := link(1) + link(2)
	want := "A " + first + ". B " + link(3) + ". C " + first + "."
	if got.Text != want {
		t.Errorf("Rewrite() text = %q, want %q", got.Text, want)
	}
}

func TestRewrite_DistinctTokensSharingAtomsAllocateFresh(t *testing.T) {
	// Memoization is keyed on the whole raw token, not on atoms.
	got := Rewrite("citeturn1search0 citeturn1search0turn1search1", nil)

	want := link(1) + " " + link(2) + link(3)
	if got.Text != want {
		t.Errorf("Rewrite() text = %q, want %q", got.Text, want)
	}
}

func TestRewrite_PartialMarkersLeftAlone(t *testing.T) {
	tests := []string{
		"cite",
		"citeturn",
		"citeturn1",
		"citeturn1search",
		"citeturnXsearch0",
		"citeturn1browse0",
		"turn1search0",
	}

	for _, text := range tests {
		got := Rewrite(text, nil)
		if got.Text != text {
			t.Errorf("Rewrite(%q) = %q, want unchanged", text, got.Text)
		}
		if got.Total != 0 {
			t.Errorf("Rewrite(%q) total = %d, want 0", text, got.Total)
		}
	}
}

func TestRewrite_GreedyTokenStopsAtNonAtom(t *testing.T) {
	got := Rewrite("citeturn1search0turn2search", nil)

	want := link(1) + "turn2search"
	if got.Text != want {
		t.Errorf("Rewrite() text = %q, want %q", got.Text, want)
	}
}

func TestRewriter_MalformedTokenIsIdentity(t *testing.T) {
	rw := NewRewriter(nil)

	got := rw.replace("citenothing")
	if got != "citenothing" {
		t.Errorf("replace() = %q, want unchanged", got)
	}
	if rw.Counter() != 0 {
		t.Errorf("Counter() = %d, want 0", rw.Counter())
	}
	if _, ok := rw.memo["citenothing"]; ok {
		t.Error("malformed token should not be memoized")
	}
}

func TestRewriter_ReentrantPasses(t *testing.T) {
	text := "citeturn1search0turn1search1"

	a := Rewrite(text, nil)
	b := Rewrite(text, nil)
	if a.Text != b.Text || a.Total != b.Total {
		t.Errorf("independent passes differ: %+v vs %+v", a, b)
	}
}

func TestParseToken(t *testing.T) {
	got := ParseToken("citeturn14search0turn25view3")
	want := []Atom{
		{Turn: "14", Kind: "search", Sub: "0"},
		{Turn: "25", Kind: "view", Sub: "3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseToken() = %+v, want %+v", got, want)
	}

	if atoms := ParseToken("cite"); len(atoms) != 0 {
		t.Errorf("ParseToken(cite) = %+v, want none", atoms)
	}
}

func TestAnchor(t *testing.T) {
	if got := Anchor(12); got != "reference-12" {
		t.Errorf("Anchor(12) = %q, want %q", got, "reference-12")
	}
}

func link(n int) string {
	return "<sup>[[" + strconv.Itoa(n) + "]](#reference-" + strconv.Itoa(n) + ")</sup>"
}
