package export

import (
	"strings"
	"testing"

	"github.com/matsen/citefix/internal/reference"
)

func TestReferenceSection_Indexed(t *testing.T) {
	list := reference.List{
		{Title: "Example", URL: "https://example.com"},
		{Title: "Go", URL: "https://go.dev"},
	}

	got := ReferenceSection(list, reference.NewIndex(list), "References")

	want := "\n\n---\n\n## References\n\n" +
		"<a id=\"reference-1\"></a>\n**[1]** [Example](https://example.com)\n\n" +
		"<a id=\"reference-2\"></a>\n**[2]** [Go](https://go.dev)\n\n"
	if got != want {
		t.Errorf("ReferenceSection() =\n%q\nwant\n%q", got, want)
	}
}

func TestReferenceSection_AscendingRegardlessOfListOrder(t *testing.T) {
	list := reference.List{
		{Title: "Z", URL: "https://z.example"},
		{Title: "A", URL: "https://a.example"},
	}
	idx := reference.Index{
		5: list[0],
		2: list[1],
	}

	got := ReferenceSection(list, idx, "")

	two := strings.Index(got, `<a id="reference-2">`)
	five := strings.Index(got, `<a id="reference-5">`)
	if two < 0 || five < 0 {
		t.Fatalf("ReferenceSection() missing anchors:\n%s", got)
	}
	if two > five {
		t.Errorf("ReferenceSection() entry 2 should precede entry 5:\n%s", got)
	}
	if strings.Count(got, "<a id=") != 2 {
		t.Errorf("ReferenceSection() should have one anchor per key:\n%s", got)
	}
}

func TestReferenceSection_EmptyIndexFallsBackToList(t *testing.T) {
	list := reference.List{
		{Title: "Only", URL: "https://only.example"},
	}

	got := ReferenceSection(list, nil, "Sources")

	if !strings.HasPrefix(got, "\n\n---\n\n## Sources\n\n") {
		t.Errorf("ReferenceSection() prefix wrong:\n%q", got)
	}
	if !strings.Contains(got, "<a id=\"reference-1\"></a>\n**[1]** [Only](https://only.example)\n\n") {
		t.Errorf("ReferenceSection() should enumerate the list:\n%q", got)
	}
}

func TestReferenceSection_Empty(t *testing.T) {
	got := ReferenceSection(nil, nil, "")
	want := "\n\n---\n\n## " + DefaultHeading + "\n\n"
	if got != want {
		t.Errorf("ReferenceSection() = %q, want %q", got, want)
	}
}
