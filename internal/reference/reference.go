// Package reference defines the wire types exchanged between the metadata
// fetch step and the field-injection step.
package reference

// Source values for Record.
const (
	SourceCrossref = "crossref"
	SourceFallback = "fallback"
)

// InputRef is one entry of the refs input file: a numbered reference with
// an optional DOI and a fallback display string used when no metadata can
// be fetched.
type InputRef struct {
	ID       int    `json:"id"`
	DOI      string `json:"doi,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}

// Record is one entry of references.json, consumed by the inject step for
// lookup by ID.
type Record struct {
	ID        int    `json:"id"`
	DOI       string `json:"doi"`
	Formatted string `json:"formatted"`
	Source    string `json:"source"` // crossref or fallback
}

// Lookup indexes records by reference ID. Later records win when an ID
// repeats.
func Lookup(records []Record) map[int]Record {
	m := make(map[int]Record, len(records))
	for _, r := range records {
		m[r.ID] = r
	}
	return m
}
