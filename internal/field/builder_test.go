package field

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/docfield/docfield/internal/docml"
)

// counterIDs returns a deterministic IDSource for tests.
func counterIDs() IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("testid%02d", n)
	}
}

func TestCitationSequence(t *testing.T) {
	b := NewBuilder(counterIDs())
	nodes := b.Citation([]int{1, 2}, "[1,2]", nil)

	if len(nodes) != 5 {
		t.Fatalf("Citation() returned %d nodes, want 5", len(nodes))
	}

	wantTypes := []string{"begin", "", "separate", "", "end"}
	for i, want := range wantTypes {
		if got := docml.FldCharType(nodes[i]); got != want {
			t.Errorf("node %d fldCharType = %q, want %q", i, got, want)
		}
	}

	instr := docml.InstrText(nodes[1])
	if !strings.HasPrefix(instr, " ADDIN ZOTERO_ITEM CSL_CITATION {") {
		t.Errorf("instruction = %q, want ADDIN ZOTERO_ITEM CSL_CITATION prefix with padding", instr)
	}
	if !strings.HasSuffix(instr, "} ") {
		t.Errorf("instruction %q missing trailing pad", instr)
	}
	for _, want := range []string{
		`"citationID":"testid01"`,
		`"formattedCitation":"[1,2]"`,
		`"plainCitation":"[1,2]"`,
		`"noteIndex":0`,
		`"id":1`,
		`"id":2`,
		`"uris":["http://zotero.org/users/local/gen/items/REF0001"]`,
		`"uri":["http://zotero.org/users/local/gen/items/REF0002"]`,
		`"type":"article-journal"`,
		`"schema":"` + SchemaURL + `"`,
	} {
		if !strings.Contains(instr, want) {
			t.Errorf("instruction missing %s:\n%s", want, instr)
		}
	}

	display, ok := docml.RunText(nodes[3])
	if !ok || display != "[1,2]" {
		t.Errorf("display run text = %q, want [1,2]", display)
	}
}

func TestCitationCopiesFormatting(t *testing.T) {
	rpr := docml.Element("rPr")
	docml.AppendChild(rpr, docml.Element("i"))

	b := NewBuilder(counterIDs())
	nodes := b.Citation([]int{4}, "[4]", rpr)

	got := docml.RunProperties(nodes[3])
	if got == nil {
		t.Fatal("display run has no rPr")
	}
	if got == rpr {
		t.Error("display run shares rPr with the original; want a copy")
	}
	if got.OutputXML(true) != rpr.OutputXML(true) {
		t.Errorf("copied rPr = %s, want %s", got.OutputXML(true), rpr.OutputXML(true))
	}
}

func TestItemURI(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "http://zotero.org/users/local/gen/items/REF0001"},
		{42, "http://zotero.org/users/local/gen/items/REF0042"},
		{12345, "http://zotero.org/users/local/gen/items/REF12345"},
	}
	for _, tt := range tests {
		if got := ItemURI(tt.id); got != tt.want {
			t.Errorf("ItemURI(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestBibliographyParagraphs(t *testing.T) {
	b := NewBuilder(counterIDs())

	open := b.BibliographyOpen()
	runs := docml.Runs(open)
	if len(runs) != 3 {
		t.Fatalf("open paragraph has %d runs, want 3", len(runs))
	}
	if docml.FldCharType(runs[0]) != "begin" || docml.FldCharType(runs[2]) != "separate" {
		t.Error("open paragraph runs are not begin/instr/separate")
	}
	instr := docml.InstrText(runs[1])
	if !strings.HasPrefix(instr, " ADDIN ZOTERO_BIBL {") || !strings.HasSuffix(instr, "} CSL_BIBLIOGRAPHY ") {
		t.Errorf("bibliography instruction = %q", instr)
	}
	for _, want := range []string{`"uncited":[]`, `"omitted":[]`, `"custom":[]`, `"schema":"` + SchemaURL + `"`} {
		if !strings.Contains(instr, want) {
			t.Errorf("bibliography instruction missing %s", want)
		}
	}

	closeP := b.BibliographyClose()
	closeRuns := docml.Runs(closeP)
	if len(closeRuns) != 1 || docml.FldCharType(closeRuns[0]) != "end" {
		t.Error("close paragraph is not a lone end marker")
	}
}

func TestRandomIDs(t *testing.T) {
	ids := RandomIDs(rand.New(rand.NewSource(1)))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := ids()
		if len(id) != CitationIDLength {
			t.Fatalf("id %q has length %d, want %d", id, len(id), CitationIDLength)
		}
		for _, r := range id {
			if !strings.ContainsRune(idAlphabet, r) {
				t.Fatalf("id %q contains %q outside the alphabet", id, r)
			}
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Error("RandomIDs produced no variation across 50 draws")
	}
}
