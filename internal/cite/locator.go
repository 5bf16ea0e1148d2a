// Package cite locates bracketed citation markers such as [1] or [2, 3]
// inside the text of a single run.
package cite

import (
	"regexp"
	"strconv"
	"strings"
)

// markerPattern matches a bracketed, comma-separated list of integers.
// A marker split across two runs by a formatting change is not visible to
// this package and is not matched; see the package-level limitation note
// on Split.
var markerPattern = regexp.MustCompile(`\[(\d+(?:,\s*\d+)*)\]`)

// Marker is one citation marker extracted from run text.
type Marker struct {
	RawText string // the original bracket text, e.g. "[1,2]"
	IDs     []int  // reference IDs in written order
}

// Segment is one piece of a split run text: either plain text or a marker.
type Segment struct {
	Text   string  // raw value; for marker segments this equals Marker.RawText
	Marker *Marker // nil for plain text segments
}

// Split partitions text into an ordered sequence of text and marker
// segments. Concatenating the Text of every segment reproduces the input
// exactly. Text with no markers yields a single plain segment, which
// callers treat as "no rewrite needed".
//
// Markers whose characters span adjacent runs cannot be seen here and are
// left untouched: the locator operates on one run's text at a time.
func Split(text string) []Segment {
	locs := markerPattern.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return []Segment{{Text: text}}
	}

	var segs []Segment
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			segs = append(segs, Segment{Text: text[last:loc[0]]})
		}
		raw := text[loc[0]:loc[1]]
		segs = append(segs, Segment{
			Text:   raw,
			Marker: &Marker{RawText: raw, IDs: parseIDs(text[loc[2]:loc[3]])},
		})
		last = loc[1]
	}
	if last < len(text) {
		segs = append(segs, Segment{Text: text[last:]})
	}
	return segs
}

// HasMarker reports whether text contains at least one citation marker.
func HasMarker(text string) bool {
	return markerPattern.MatchString(text)
}

// parseIDs splits the bracket interior ("3, 4,5") into integers. The input
// already matched markerPattern, so each piece parses cleanly.
func parseIDs(interior string) []int {
	parts := strings.Split(interior, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		n, _ := strconv.Atoi(strings.TrimSpace(part))
		ids = append(ids, n)
	}
	return ids
}
