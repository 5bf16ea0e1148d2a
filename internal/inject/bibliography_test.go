package inject

import (
	"strings"
	"testing"

	"github.com/docfield/docfield/internal/docml"
)

func TestWrapBibliography(t *testing.T) {
	doc := parseDoc(t,
		`<w:p><w:r><w:t>References</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>1. Smith J. Title. Journal. 2020.</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>2. Doe A. Other. Journal. 2021.</w:t></w:r></w:p>`)
	body := doc.Body()
	entry1 := docml.Paragraphs(body)[1]
	entry2 := docml.Paragraphs(body)[2]
	entry1XML := entry1.OutputXML(true)
	entry2XML := entry2.OutputXML(true)

	n := testInjector().wrapBibliography(body)
	if n != 2 {
		t.Fatalf("wrapBibliography = %d, want 2", n)
	}

	paras := docml.Paragraphs(body)
	if len(paras) != 5 {
		t.Fatalf("got %d paragraphs, want 5", len(paras))
	}

	// Heading, begin-field paragraph, entry 1, entry 2, end-field paragraph.
	openRuns := docml.Runs(paras[1])
	if len(openRuns) != 3 || docml.FldCharType(openRuns[0]) != "begin" || docml.FldCharType(openRuns[2]) != "separate" {
		t.Error("begin-field paragraph is not begin/instr/separate")
	}
	if instr := docml.InstrText(openRuns[1]); !strings.Contains(instr, "ADDIN ZOTERO_BIBL") || !strings.Contains(instr, "CSL_BIBLIOGRAPHY") {
		t.Errorf("bibliography instruction = %q", instr)
	}

	if paras[2] != entry1 || paras[3] != entry2 {
		t.Error("entry paragraphs moved or were replaced")
	}
	if paras[2].OutputXML(true) != entry1XML || paras[3].OutputXML(true) != entry2XML {
		t.Error("entry paragraphs were modified")
	}

	closeRuns := docml.Runs(paras[4])
	if len(closeRuns) != 1 || docml.FldCharType(closeRuns[0]) != "end" {
		t.Error("end-field paragraph is not a lone end marker")
	}
}

func TestWrapBibliographyNoEntries(t *testing.T) {
	doc := parseDoc(t, `<w:p><w:r><w:t>Just prose.</w:t></w:r></w:p>`)
	body := doc.Body()
	before := len(docml.Children(body))

	if n := testInjector().wrapBibliography(body); n != 0 {
		t.Errorf("wrapBibliography = %d, want 0", n)
	}
	if got := len(docml.Children(body)); got != before {
		t.Errorf("body changed size on no-op: %d -> %d", before, got)
	}
}

// TestWrapBibliographyRangePolicy verifies a non-qualifying paragraph lying
// between the first and last entries stays inside the wrapped region.
func TestWrapBibliographyRangePolicy(t *testing.T) {
	doc := parseDoc(t,
		`<w:p><w:r><w:t>1. Smith J. Title. 2020.</w:t></w:r></w:p>`+
			`<w:p/>`+
			`<w:p><w:r><w:t>2. Doe A. Other. 2021.</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Appendix</w:t></w:r></w:p>`)
	body := doc.Body()
	blank := docml.Paragraphs(body)[1]
	appendix := docml.Paragraphs(body)[3]

	if n := testInjector().wrapBibliography(body); n != 2 {
		t.Fatalf("wrapBibliography = %d, want 2", n)
	}

	paras := docml.Paragraphs(body)
	if len(paras) != 6 {
		t.Fatalf("got %d paragraphs, want 6", len(paras))
	}
	// begin, entry, blank, entry, end, appendix
	if paras[2] != blank {
		t.Error("blank separator fell outside the wrapped region")
	}
	if docml.FldCharType(docml.Runs(paras[4])[0]) != "end" {
		t.Error("end paragraph not directly after the last entry")
	}
	if paras[5] != appendix {
		t.Error("trailing paragraph not left after the wrapped region")
	}
}

func TestWrapBibliographyAlreadyWrapped(t *testing.T) {
	doc := parseDoc(t,
		`<w:p><w:r><w:t>1. Smith J. Title. 2020.</w:t></w:r></w:p>`)
	body := doc.Body()
	inj := testInjector()

	if n := inj.wrapBibliography(body); n != 1 {
		t.Fatalf("first wrap = %d, want 1", n)
	}
	before := len(docml.Children(body))

	if n := inj.wrapBibliography(body); n != 0 {
		t.Errorf("second wrap = %d, want 0", n)
	}
	if got := len(docml.Children(body)); got != before {
		t.Errorf("second wrap changed the body: %d -> %d", before, got)
	}
}
