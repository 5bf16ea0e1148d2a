// Package inject rewrites a document tree so that plain bracketed citation
// markers become Zotero-compatible complex fields and the bibliography
// region is delimited by a matching field.
package inject

import (
	"errors"
	"fmt"
	"os"

	"github.com/docfield/docfield/internal/docml"
	"github.com/docfield/docfield/internal/field"
	"github.com/docfield/docfield/internal/nsrepair"
)

// ErrNoBody signals a document whose root text container is missing. The
// pipeline aborts before touching the output file.
var ErrNoBody = errors.New("document has no w:body element")

// Result reports what one pipeline run changed.
type Result struct {
	Citations           int `json:"citations"`
	BibliographyEntries int `json:"bibliography_entries"`
}

// Injector runs the field-injection pipeline over one document tree.
type Injector struct {
	fields *field.Builder
}

// New returns an Injector emitting fields from the given builder.
func New(fields *field.Builder) *Injector {
	return &Injector{fields: fields}
}

// Run transforms the tree in place. Inline rewriting fully completes before
// the bibliography wrapper runs: the wrapper depends on final paragraph
// positions and on bracket text already being replaced, so its
// numbered-entry pattern cannot match inline citation text.
func (in *Injector) Run(doc *docml.Document) (Result, error) {
	body := doc.Body()
	if body == nil {
		return Result{}, ErrNoBody
	}

	var res Result
	for _, p := range docml.AllParagraphs(body) {
		res.Citations += in.rewriteParagraph(p)
	}
	res.BibliographyEntries = in.wrapBibliography(body)
	return res, nil
}

// InjectFile loads the document.xml at path, runs the pipeline, and writes
// the result back. Serialization and the namespace repair both happen in
// memory; the file is written exactly once, after every transform
// succeeded, so a failing run leaves the input untouched.
func (in *Injector) InjectFile(path string) (Result, error) {
	doc, err := docml.Load(path)
	if err != nil {
		return Result{}, err
	}

	res, err := in.Run(doc)
	if err != nil {
		return Result{}, err
	}

	out, _ := nsrepair.Repair(doc.Serialize())
	if err := os.WriteFile(path, out, 0644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", path, err)
	}
	return res, nil
}
