package field

import (
	"encoding/json"
	"fmt"
)

// SchemaURL is the CSL schema reference Zotero embeds in every payload.
const SchemaURL = "https://github.com/citation-style-language/schema/raw/master/csl-citation.json"

// itemURIPrefix is the namespace for synthesized per-item URIs.
const itemURIPrefix = "http://zotero.org/users/local/gen/items/"

// CitationPayload is the CSL_CITATION JSON carried in an inline field's
// instruction text. Field order follows the wire format Zotero writes.
type CitationPayload struct {
	CitationID    string             `json:"citationID"`
	Properties    CitationProperties `json:"properties"`
	CitationItems []CitationItem     `json:"citationItems"`
	Schema        string             `json:"schema"`
}

// CitationProperties carries the rendered forms of the citation.
type CitationProperties struct {
	FormattedCitation string `json:"formattedCitation"`
	PlainCitation     string `json:"plainCitation"`
	NoteIndex         int    `json:"noteIndex"`
}

// CitationItem is one cited reference inside a payload.
type CitationItem struct {
	ID       int      `json:"id"`
	URIs     []string `json:"uris"`
	URI      []string `json:"uri"`
	ItemData ItemData `json:"itemData"`
}

// ItemData is the minimal CSL item description Zotero accepts.
type ItemData struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// BibliographyPayload is the CSL_BIBLIOGRAPHY JSON carried in the
// bibliography field's instruction text.
type BibliographyPayload struct {
	Uncited []string `json:"uncited"`
	Omitted []string `json:"omitted"`
	Custom  []string `json:"custom"`
	Schema  string   `json:"schema"`
}

// ItemURI synthesizes the stable per-item URI for a reference ID, with the
// ID zero-padded to 4 digits.
func ItemURI(id int) string {
	return fmt.Sprintf("%sREF%04d", itemURIPrefix, id)
}

// citationJSON builds the CSL_CITATION payload for a marker.
func citationJSON(citationID string, ids []int, displayText string) string {
	items := make([]CitationItem, 0, len(ids))
	for _, id := range ids {
		uri := ItemURI(id)
		items = append(items, CitationItem{
			ID:       id,
			URIs:     []string{uri},
			URI:      []string{uri},
			ItemData: ItemData{ID: id, Type: "article-journal"},
		})
	}
	payload := CitationPayload{
		CitationID: citationID,
		Properties: CitationProperties{
			FormattedCitation: displayText,
			PlainCitation:     displayText,
			NoteIndex:         0,
		},
		CitationItems: items,
		Schema:        SchemaURL,
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

// bibliographyJSON builds the CSL_BIBLIOGRAPHY payload.
func bibliographyJSON() string {
	data, _ := json.Marshal(BibliographyPayload{
		Uncited: []string{},
		Omitted: []string{},
		Custom:  []string{},
		Schema:  SchemaURL,
	})
	return string(data)
}
