package inject

import (
	"github.com/antchfx/xmlquery"

	"github.com/docfield/docfield/internal/cite"
	"github.com/docfield/docfield/internal/docml"
)

// rewriteParagraph replaces every run containing citation markers with
// leading text, field sequences, and trailing text, and returns the number
// of citations injected. The paragraph's child list is rebuilt as a new
// slice and swapped in atomically.
//
// Runs sitting inside an existing complex field (between a begin and end
// fldChar) are never rewritten: an injected field's display run still holds
// the literal bracket text, and rewriting it on a second pass would nest
// fields inside fields.
func (in *Injector) rewriteParagraph(p *xmlquery.Node) int {
	count := 0
	fieldDepth := 0
	changed := false

	children := docml.Children(p)
	out := make([]*xmlquery.Node, 0, len(children))

	for _, child := range children {
		if !docml.IsElement(child, "r") {
			out = append(out, child)
			continue
		}

		switch docml.FldCharType(child) {
		case "begin":
			fieldDepth++
			out = append(out, child)
			continue
		case "end":
			if fieldDepth > 0 {
				fieldDepth--
			}
			out = append(out, child)
			continue
		}
		if fieldDepth > 0 {
			out = append(out, child)
			continue
		}

		text, ok := docml.RunText(child)
		if !ok || !cite.HasMarker(text) {
			out = append(out, child)
			continue
		}

		rpr := docml.RunProperties(child)
		for _, seg := range cite.Split(text) {
			if seg.Marker == nil {
				out = append(out, docml.TextRun(seg.Text, rpr))
				continue
			}
			out = append(out, in.fields.Citation(seg.Marker.IDs, seg.Marker.RawText, rpr)...)
			count++
		}
		changed = true
	}

	if changed {
		docml.SetChildren(p, out)
	}
	return count
}
