package docml

import (
	"encoding/xml"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Element creates a detached WordprocessingML element node.
func Element(local string) *xmlquery.Node {
	return &xmlquery.Node{
		Type:         xmlquery.ElementNode,
		Prefix:       "w",
		Data:         local,
		NamespaceURI: WML,
	}
}

// SetAttr appends a prefixed attribute to an element.
func SetAttr(n *xmlquery.Node, space, local, value string) {
	n.Attr = append(n.Attr, xmlquery.Attr{
		Name:  xml.Name{Space: space, Local: local},
		Value: value,
	})
}

// AttrValue returns the value of the attribute with the given prefix and
// local name, or "". An empty space matches any prefix.
func AttrValue(n *xmlquery.Node, space, local string) string {
	for _, attr := range n.Attr {
		if attr.Name.Local == local && (space == "" || attr.Name.Space == space) {
			return attr.Value
		}
	}
	return ""
}

// AppendChild links n as the last child of parent.
func AppendChild(parent, n *xmlquery.Node) {
	xmlquery.AddChild(parent, n)
}

// AppendText adds a text node as the last child of parent.
func AppendText(parent *xmlquery.Node, text string) {
	xmlquery.AddChild(parent, &xmlquery.Node{
		Type: xmlquery.TextNode,
		Data: text,
	})
}

// IsElement reports whether n is a w:<local> element.
func IsElement(n *xmlquery.Node, local string) bool {
	return n.Type == xmlquery.ElementNode && n.Prefix == "w" && n.Data == local
}

// FindChild returns the first direct w:<local> child of n, or nil.
func FindChild(n *xmlquery.Node, local string) *xmlquery.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if IsElement(child, local) {
			return child
		}
	}
	return nil
}

// Children returns every direct child of n in order, elements and text alike.
func Children(n *xmlquery.Node) []*xmlquery.Node {
	var children []*xmlquery.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		children = append(children, child)
	}
	return children
}

// SetChildren replaces the entire child list of parent with children,
// relinking all sibling and parent pointers. Transformations build a fresh
// child slice and swap it in here instead of inserting by index, so a later
// insertion can never shift positions computed from the old list.
func SetChildren(parent *xmlquery.Node, children []*xmlquery.Node) {
	parent.FirstChild = nil
	parent.LastChild = nil
	var prev *xmlquery.Node
	for _, child := range children {
		child.Parent = parent
		child.PrevSibling = prev
		child.NextSibling = nil
		if prev == nil {
			parent.FirstChild = child
		} else {
			prev.NextSibling = child
		}
		prev = child
	}
	parent.LastChild = prev
}

// Clone returns a detached deep copy of n. Attribute order is preserved.
func Clone(n *xmlquery.Node) *xmlquery.Node {
	if n == nil {
		return nil
	}
	c := &xmlquery.Node{
		Type:         n.Type,
		Data:         n.Data,
		Prefix:       n.Prefix,
		NamespaceURI: n.NamespaceURI,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]xmlquery.Attr, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		xmlquery.AddChild(c, Clone(child))
	}
	return c
}

// FldCharRun returns a run containing a single w:fldChar of the given type
// (begin, separate, or end).
func FldCharRun(charType string) *xmlquery.Node {
	r := Element("r")
	fc := Element("fldChar")
	SetAttr(fc, "w", "fldCharType", charType)
	AppendChild(r, fc)
	return r
}

// InstrTextRun returns a run holding field instruction text. Word pads the
// instruction with single spaces, so the text is emitted as " instr " with
// xml:space="preserve".
func InstrTextRun(instr string) *xmlquery.Node {
	r := Element("r")
	it := Element("instrText")
	SetAttr(it, "xml", "space", "preserve")
	AppendText(it, " "+instr+" ")
	AppendChild(r, it)
	return r
}

// TextRun returns a run with the given text. rpr, when non-nil, is deep
// copied in as the run properties; the original is never attached or
// mutated. Text with a leading or trailing space gets xml:space="preserve",
// since renderers are free to collapse unflagged edge whitespace.
func TextRun(text string, rpr *xmlquery.Node) *xmlquery.Node {
	r := Element("r")
	if rpr != nil {
		AppendChild(r, Clone(rpr))
	}
	t := Element("t")
	if strings.HasPrefix(text, " ") || strings.HasSuffix(text, " ") {
		SetAttr(t, "xml", "space", "preserve")
	}
	AppendText(t, text)
	AppendChild(r, t)
	return r
}
