package crossref

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects a citation formatting style.
type Style string

// Supported styles.
const (
	StyleVancouver Style = "vancouver"
	StyleAPA       Style = "apa"
	StyleNature    Style = "nature"
)

// maxAuthors is the author-list cutoff before "et al." is appended.
const maxAuthors = 6

// ParseStyle validates a style name.
func ParseStyle(name string) (Style, error) {
	switch Style(name) {
	case StyleVancouver, StyleAPA, StyleNature:
		return Style(name), nil
	}
	return "", fmt.Errorf("unknown citation style: %s (expected vancouver, apa, or nature)", name)
}

// Format renders a work as a reference display string in the given style.
func Format(w *Work, style Style) string {
	switch style {
	case StyleAPA:
		return formatAPA(w)
	case StyleNature:
		return formatNature(w)
	default:
		return formatVancouver(w)
	}
}

// formatVancouver renders Vancouver/NLM style:
// "Smith J, Doe A. Title. Journal. 2020;12(3):45-67. doi:10.x/y"
func formatVancouver(w *Work) string {
	var parts []string

	if authors := formatAuthors(w.Author, StyleVancouver); authors != "" {
		parts = append(parts, authors)
	}
	if title := strings.TrimSuffix(w.FirstTitle(), "."); title != "" {
		parts = append(parts, title)
	}

	year := yearString(w)
	journalPart := ""
	if journal := w.Journal(); journal != "" {
		journalPart = journal + "."
		if year != "" {
			journalPart += " " + year
		}
		if w.Volume != "" {
			journalPart += ";" + w.Volume
			if w.Issue != "" {
				journalPart += "(" + w.Issue + ")"
			}
		}
		if w.Page != "" {
			journalPart += ":" + w.Page
		}
		journalPart += "."
	} else if year != "" {
		journalPart = year + "."
	}
	if journalPart != "" {
		parts = append(parts, journalPart)
	}

	if w.DOI != "" {
		parts = append(parts, "doi:"+w.DOI)
	}

	return strings.Join(parts, " ")
}

// formatAPA renders APA 7th style.
func formatAPA(w *Work) string {
	ref := fmt.Sprintf("%s (%s). %s.", formatAuthors(w.Author, StyleAPA), yearString(w), w.FirstTitle())
	if journal := w.Journal(); journal != "" {
		ref += " *" + journal + "*"
		if w.Volume != "" {
			ref += ", *" + w.Volume + "*"
			if w.Issue != "" {
				ref += "(" + w.Issue + ")"
			}
		}
		if w.Page != "" {
			ref += ", " + w.Page
		}
		ref += "."
	}
	if w.DOI != "" {
		ref += " https://doi.org/" + w.DOI
	}
	return ref
}

// formatNature renders Nature style.
func formatNature(w *Work) string {
	ref := fmt.Sprintf("%s %s.", formatAuthors(w.Author, StyleNature), w.FirstTitle())
	if journal := w.Journal(); journal != "" {
		ref += " *" + journal + "*"
		if w.Volume != "" {
			ref += " **" + w.Volume + "**"
		}
		if w.Page != "" {
			ref += ", " + w.Page
		}
		if year := yearString(w); year != "" {
			ref += " (" + year + ")"
		}
		ref += "."
	}
	return ref
}

// formatAuthors renders the author list per style, cutting off with
// "et al." after maxAuthors names.
func formatAuthors(authors []Author, style Style) string {
	if len(authors) == 0 {
		return ""
	}

	var names []string
	for _, a := range authors {
		if len(names) >= maxAuthors {
			break
		}
		switch style {
		case StyleVancouver:
			names = append(names, strings.TrimSpace(a.Family+" "+dottedInitials(a.Given)))
		default:
			name := a.Family
			if initials := dottedInitials(a.Given); initials != "" {
				name += ", " + initials
			}
			names = append(names, name)
		}
	}

	var result string
	if style == StyleAPA && len(names) > 1 {
		result = strings.Join(names[:len(names)-1], ", ") + ", & " + names[len(names)-1]
	} else {
		result = strings.Join(names, ", ")
	}

	if len(authors) > maxAuthors {
		if style == StyleAPA {
			result += ", ... et al."
		} else {
			result += ", et al."
		}
	}
	return result
}

// dottedInitials turns "Jane Q" into "J. Q.".
func dottedInitials(given string) string {
	words := strings.Fields(given)
	if len(words) == 0 {
		return ""
	}
	initials := make([]string, len(words))
	for i, word := range words {
		initials[i] = string([]rune(word)[0]) + "."
	}
	return strings.Join(initials, " ")
}

// yearString returns the publication year as a string, or "".
func yearString(w *Work) string {
	if y := w.Issued.Year(); y > 0 {
		return strconv.Itoa(y)
	}
	return ""
}
