// Package nsrepair patches serialized document XML so that namespace
// declarations required for forward-compatible markup survive
// serialization. Generic tree serializers omit declarations for prefixes no
// surviving node references, but Word still expects them on the root
// element. The repair works on the serialized bytes and never touches the
// tree model.
package nsrepair

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/docfield/docfield/internal/docml"
)

// Declaration is one xmlns declaration the root element must carry.
type Declaration struct {
	Prefix string
	URI    string
}

// Required lists the declarations checked on every repair: the
// document-revision (w14, w15) and drawing (wp14) extension namespaces.
// URIs come from the docml namespace table.
var Required = []Declaration{
	{Prefix: "w14", URI: docml.Namespaces["w14"]},
	{Prefix: "w15", URI: docml.Namespaces["w15"]},
	{Prefix: "wp14", URI: docml.Namespaces["wp14"]},
}

// rootTagPattern locates the opening tag of the document root element.
var rootTagPattern = regexp.MustCompile(`<\w+:document\b`)

// Repair inserts any missing required declarations immediately after the
// root tag name and returns the patched content plus the number of
// declarations added. Content without a recognizable root element is
// returned unchanged.
func Repair(content []byte) ([]byte, int) {
	loc := rootTagPattern.FindIndex(content)
	if loc == nil {
		return content, 0
	}

	var missing []byte
	count := 0
	for _, decl := range Required {
		if bytes.Contains(content, []byte("xmlns:"+decl.Prefix+"=")) {
			continue
		}
		missing = fmt.Appendf(missing, ` xmlns:%s="%s"`, decl.Prefix, decl.URI)
		count++
	}
	if count == 0 {
		return content, 0
	}

	patched := make([]byte, 0, len(content)+len(missing))
	patched = append(patched, content[:loc[1]]...)
	patched = append(patched, missing...)
	patched = append(patched, content[loc[1]:]...)
	return patched, count
}
