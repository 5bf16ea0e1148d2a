package docml

// WML is the main WordprocessingML namespace.
const WML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Namespaces lists the OOXML namespace prefixes a document root is expected
// to declare. Kept as one static table so namespace handling stays auditable;
// the nsrepair package draws its required declarations from here.
var Namespaces = map[string]string{
	"w":    WML,
	"r":    "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
	"wp":   "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing",
	"a":    "http://schemas.openxmlformats.org/drawingml/2006/main",
	"mc":   "http://schemas.openxmlformats.org/markup-compatibility/2006",
	"w14":  "http://schemas.microsoft.com/office/word/2010/wordml",
	"w15":  "http://schemas.microsoft.com/office/word/2012/wordml",
	"wp14": "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing",
	"wps":  "http://schemas.microsoft.com/office/word/2010/wordprocessingShape",
}
