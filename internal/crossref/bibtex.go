package crossref

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlpha = regexp.MustCompile(`[^a-zA-Z]`)

// ToBibTeX converts a fetched work to a BibTeX entry. The citation key is
// FirstAuthorYear. A nil work produces a minimal entry carrying only the
// fallback text.
func ToBibTeX(refID int, w *Work, fallback string) string {
	if w == nil {
		return fmt.Sprintf("@article{ref%d,\n  note = {%s}\n}\n", refID, escapeLatex(fallback))
	}

	firstAuthor := "Unknown"
	if len(w.Author) > 0 && w.Author[0].Family != "" {
		firstAuthor = w.Author[0].Family
	}
	key := nonAlpha.ReplaceAllString(firstAuthor, "") + yearString(w)

	var authorNames []string
	for _, a := range w.Author {
		authorNames = append(authorNames, a.Family+", "+a.Given)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@article{%s,\n", key)
	if len(authorNames) > 0 {
		fmt.Fprintf(&b, "  author = {%s},\n", strings.Join(authorNames, " and "))
	}
	if title := w.FirstTitle(); title != "" {
		fmt.Fprintf(&b, "  title = {%s},\n", escapeLatex(title))
	}
	if journal := w.Journal(); journal != "" {
		fmt.Fprintf(&b, "  journal = {%s},\n", escapeLatex(journal))
	}
	if year := yearString(w); year != "" {
		fmt.Fprintf(&b, "  year = {%s},\n", year)
	}
	if w.Volume != "" {
		fmt.Fprintf(&b, "  volume = {%s},\n", w.Volume)
	}
	if w.Issue != "" {
		fmt.Fprintf(&b, "  number = {%s},\n", w.Issue)
	}
	if w.Page != "" {
		fmt.Fprintf(&b, "  pages = {%s},\n", w.Page)
	}
	if w.DOI != "" {
		fmt.Fprintf(&b, "  doi = {%s},\n", w.DOI)
	}
	b.WriteString("}\n")
	return b.String()
}

// escapeLatex escapes characters with special meaning in LaTeX.
func escapeLatex(s string) string {
	replacer := strings.NewReplacer(
		"&", "\\&",
		"%", "\\%",
		"$", "\\$",
		"#", "\\#",
		"_", "\\_",
	)
	return replacer.Replace(s)
}
