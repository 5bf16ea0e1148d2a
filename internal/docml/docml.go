// Package docml models the WordprocessingML body of an unpacked .docx
// document as a mutable XML node tree. It wraps github.com/antchfx/xmlquery
// so that node identity, ordering, and attributes survive a load/serialize
// round trip except where the caller changes them on purpose.
package docml

import (
	"bytes"
	"fmt"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

var (
	bodyExpr      = xpath.MustCompile("//w:body")
	paragraphExpr = xpath.MustCompile("//w:p")
)

// Document is a parsed document.xml tree.
type Document struct {
	root *xmlquery.Node
}

// Parse parses document.xml bytes into a Document.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing document XML: %w", err)
	}
	return &Document{root: root}, nil
}

// Load reads and parses a document.xml file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Body returns the w:body element, or nil if the document has none.
func (d *Document) Body() *xmlquery.Node {
	return xmlquery.QuerySelector(d.root, bodyExpr)
}

// Serialize converts the tree back to XML bytes. Namespace declarations a
// generic serializer drops are restored afterwards by the nsrepair package,
// not here.
func (d *Document) Serialize() []byte {
	if d.root == nil {
		return nil
	}
	return []byte(d.root.OutputXML(true))
}

// AllParagraphs returns every w:p element beneath n in document order,
// including paragraphs nested in tables.
func AllParagraphs(n *xmlquery.Node) []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(n, paragraphExpr)
}

// Paragraphs returns the direct w:p children of a body element in order.
func Paragraphs(body *xmlquery.Node) []*xmlquery.Node {
	var paras []*xmlquery.Node
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if IsElement(child, "p") {
			paras = append(paras, child)
		}
	}
	return paras
}

// Runs returns the direct w:r children of a paragraph in order.
func Runs(p *xmlquery.Node) []*xmlquery.Node {
	var runs []*xmlquery.Node
	for child := p.FirstChild; child != nil; child = child.NextSibling {
		if IsElement(child, "r") {
			runs = append(runs, child)
		}
	}
	return runs
}

// RunText returns the text of a run's w:t child. The second return is false
// when the run has no text element.
func RunText(r *xmlquery.Node) (string, bool) {
	t := FindChild(r, "t")
	if t == nil {
		return "", false
	}
	return t.InnerText(), true
}

// RunProperties returns the run's w:rPr child, or nil.
func RunProperties(r *xmlquery.Node) *xmlquery.Node {
	return FindChild(r, "rPr")
}

// FldCharType returns the w:fldCharType of a run's w:fldChar child, or ""
// when the run is not a field-character run.
func FldCharType(r *xmlquery.Node) string {
	fc := FindChild(r, "fldChar")
	if fc == nil {
		return ""
	}
	return AttrValue(fc, "w", "fldCharType")
}

// InstrText returns the instruction text of a run's w:instrText child, or ""
// when the run carries none.
func InstrText(r *xmlquery.Node) string {
	it := FindChild(r, "instrText")
	if it == nil {
		return ""
	}
	return it.InnerText()
}
