package crossref

import (
	"strings"
	"testing"
)

func TestToBibTeX(t *testing.T) {
	entry := ToBibTeX(1, sampleWork(), "fallback text")

	if !strings.HasPrefix(entry, "@article{Smith2020,\n") {
		t.Errorf("entry key wrong:\n%s", entry)
	}
	for _, want := range []string{
		"author = {Smith, Jane and Doe, Alan},",
		"title = {Efficacy of X},",
		"journal = {J Clin Med},",
		"year = {2020},",
		"volume = {12},",
		"number = {3},",
		"pages = {45-67},",
		"doi = {10.1000/xyz},",
	} {
		if !strings.Contains(entry, want) {
			t.Errorf("entry missing %q:\n%s", want, entry)
		}
	}
}

func TestToBibTeXFallback(t *testing.T) {
	entry := ToBibTeX(7, nil, "Author et al., Journal, Year")
	if !strings.HasPrefix(entry, "@article{ref7,\n") {
		t.Errorf("fallback key wrong:\n%s", entry)
	}
	if !strings.Contains(entry, "note = {Author et al., Journal, Year}") {
		t.Errorf("fallback note missing:\n%s", entry)
	}
}

func TestEscapeLatex(t *testing.T) {
	got := escapeLatex("50% of A&B_C")
	if got != `50\% of A\&B\_C` {
		t.Errorf("escapeLatex = %q", got)
	}
}
