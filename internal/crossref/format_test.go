package crossref

import (
	"strings"
	"testing"
)

// sampleWork returns a fully populated work record.
func sampleWork() *Work {
	return &Work{
		DOI:                 "10.1000/xyz",
		Title:               []string{"Efficacy of X"},
		Author:              []Author{{Given: "Jane", Family: "Smith"}, {Given: "Alan", Family: "Doe"}},
		ContainerTitle:      []string{"Journal of Clinical Medicine"},
		ShortContainerTitle: []string{"J Clin Med"},
		Issued:              DateInfo{DateParts: [][]int{{2020, 3, 1}}},
		Volume:              "12",
		Issue:               "3",
		Page:                "45-67",
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{
			style: StyleVancouver,
			want:  "Smith J., Doe A. Efficacy of X J Clin Med. 2020;12(3):45-67. doi:10.1000/xyz",
		},
		{
			style: StyleAPA,
			want:  "Smith, J., & Doe, A. (2020). Efficacy of X. *J Clin Med*, *12*(3), 45-67. https://doi.org/10.1000/xyz",
		},
		{
			style: StyleNature,
			want:  "Smith, J., Doe, A. Efficacy of X. *J Clin Med* **12**, 45-67 (2020).",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			if got := Format(sampleWork(), tt.style); got != tt.want {
				t.Errorf("Format() = %q\nwant          %q", got, tt.want)
			}
		})
	}
}

func TestFormatSparseWork(t *testing.T) {
	w := &Work{
		Title:  []string{"Untitled Report"},
		Issued: DateInfo{DateParts: [][]int{{2019}}},
	}
	got := Format(w, StyleVancouver)
	if got != "Untitled Report 2019." {
		t.Errorf("Format() = %q, want year-only rendering", got)
	}
}

func TestFormatAuthorsEtAl(t *testing.T) {
	var authors []Author
	for _, fam := range []string{"Aa", "Bb", "Cc", "Dd", "Ee", "Ff", "Gg"} {
		authors = append(authors, Author{Given: "X", Family: fam})
	}

	got := formatAuthors(authors, StyleVancouver)
	if !strings.HasSuffix(got, ", et al.") {
		t.Errorf("vancouver authors = %q, want et al. suffix", got)
	}
	if strings.Contains(got, "Gg") {
		t.Errorf("vancouver authors = %q, want cutoff after %d names", got, maxAuthors)
	}

	apa := formatAuthors(authors, StyleAPA)
	if !strings.HasSuffix(apa, ", ... et al.") {
		t.Errorf("apa authors = %q, want ... et al. suffix", apa)
	}
}

func TestParseStyle(t *testing.T) {
	for _, name := range []string{"vancouver", "apa", "nature"} {
		if _, err := ParseStyle(name); err != nil {
			t.Errorf("ParseStyle(%q) error: %v", name, err)
		}
	}
	if _, err := ParseStyle("chicago"); err == nil {
		t.Error("ParseStyle(chicago) succeeded, want error")
	}
}

func TestJournalPreference(t *testing.T) {
	w := sampleWork()
	if got := w.Journal(); got != "J Clin Med" {
		t.Errorf("Journal() = %q, want short title", got)
	}
	w.ShortContainerTitle = nil
	if got := w.Journal(); got != "Journal of Clinical Medicine" {
		t.Errorf("Journal() = %q, want full title fallback", got)
	}
	w.ContainerTitle = nil
	if got := w.Journal(); got != "" {
		t.Errorf("Journal() = %q, want empty", got)
	}
}
