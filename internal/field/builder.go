// Package field synthesizes Word complex-field node sequences carrying
// Zotero CSL payloads.
package field

import (
	"math/rand"

	"github.com/antchfx/xmlquery"

	"github.com/docfield/docfield/internal/docml"
)

// IDSource produces citation identifiers. Injecting the source keeps field
// output deterministic under test; production uses RandomIDs.
type IDSource func() string

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CitationIDLength is the length of generated citation identifiers.
const CitationIDLength = 8

// RandomIDs returns an IDSource drawing 8-char alphanumeric identifiers
// from rng. Uniqueness across a document is not guaranteed, matching the
// wire format's expectations.
func RandomIDs(rng *rand.Rand) IDSource {
	return func() string {
		b := make([]byte, CitationIDLength)
		for i := range b {
			b[i] = idAlphabet[rng.Intn(len(idAlphabet))]
		}
		return string(b)
	}
}

// Builder emits field node sequences.
type Builder struct {
	IDs IDSource
}

// NewBuilder returns a Builder using the given identifier source.
func NewBuilder(ids IDSource) *Builder {
	return &Builder{IDs: ids}
}

// Citation builds the five-node sequence for one inline citation field:
// begin, instruction, separate, display run, end. The display run carries
// the original bracket text with a copy of rpr attached. The sequence is
// a unit: callers must insert all five nodes contiguously.
func (b *Builder) Citation(ids []int, displayText string, rpr *xmlquery.Node) []*xmlquery.Node {
	instr := "ADDIN ZOTERO_ITEM CSL_CITATION " + citationJSON(b.IDs(), ids, displayText)
	return []*xmlquery.Node{
		docml.FldCharRun("begin"),
		docml.InstrTextRun(instr),
		docml.FldCharRun("separate"),
		docml.TextRun(displayText, rpr),
		docml.FldCharRun("end"),
	}
}

// BibliographyOpen builds the paragraph that opens the bibliography field:
// begin, instruction, separate.
func (b *Builder) BibliographyOpen() *xmlquery.Node {
	p := docml.Element("p")
	docml.AppendChild(p, docml.FldCharRun("begin"))
	instr := "ADDIN ZOTERO_BIBL " + bibliographyJSON() + " CSL_BIBLIOGRAPHY"
	docml.AppendChild(p, docml.InstrTextRun(instr))
	docml.AppendChild(p, docml.FldCharRun("separate"))
	return p
}

// BibliographyClose builds the paragraph that closes the bibliography
// field: a lone end marker.
func (b *Builder) BibliographyClose() *xmlquery.Node {
	p := docml.Element("p")
	docml.AppendChild(p, docml.FldCharRun("end"))
	return p
}
