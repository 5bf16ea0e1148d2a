package inject

import (
	"regexp"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/docfield/docfield/internal/docml"
)

// entryPattern identifies numbered reference-list entries such as
// "1. Smith J. Title. Journal. 2020."
var entryPattern = regexp.MustCompile(`^\d+\.\s`)

// bibliographyDirective marks an already-wrapped bibliography region.
const bibliographyDirective = "ADDIN ZOTERO_BIBL"

// wrapBibliography delimits the contiguous bibliography region with a
// begin-field paragraph and an end-field paragraph, and returns the number
// of qualifying entry paragraphs. Zero qualifying paragraphs is a no-op,
// not an error. A body that already carries a bibliography field is left
// untouched so a second pass cannot double-wrap.
//
// The wrapped region is the index range from the first to the last
// qualifying paragraph inclusive: a non-qualifying paragraph lying between
// them (a blank separator line, say) stays inside the region by position.
func (in *Injector) wrapBibliography(body *xmlquery.Node) int {
	if alreadyWrapped(body) {
		return 0
	}

	children := docml.Children(body)
	first, last, entries := -1, -1, 0
	for i, child := range children {
		if docml.IsElement(child, "p") && qualifies(child) {
			if first == -1 {
				first = i
			}
			last = i
			entries++
		}
	}
	if first == -1 {
		return 0
	}

	out := make([]*xmlquery.Node, 0, len(children)+2)
	out = append(out, children[:first]...)
	out = append(out, in.fields.BibliographyOpen())
	out = append(out, children[first:last+1]...)
	out = append(out, in.fields.BibliographyClose())
	out = append(out, children[last+1:]...)
	docml.SetChildren(body, out)

	return entries
}

// qualifies reports whether any run in the paragraph starts with a numbered
// reference-entry prefix.
func qualifies(p *xmlquery.Node) bool {
	for _, r := range docml.Runs(p) {
		if text, ok := docml.RunText(r); ok && entryPattern.MatchString(text) {
			return true
		}
	}
	return false
}

// alreadyWrapped reports whether any instruction text beneath the body
// carries the bibliography directive.
func alreadyWrapped(body *xmlquery.Node) bool {
	for _, p := range docml.AllParagraphs(body) {
		for _, r := range docml.Runs(p) {
			if strings.Contains(docml.InstrText(r), bibliographyDirective) {
				return true
			}
		}
	}
	return false
}
