// Package crossref provides a client for the CrossRef works API and
// formats the fetched metadata into reference display strings.
package crossref

// Work is the subset of a CrossRef work record used for formatting.
type Work struct {
	DOI                 string   `json:"DOI,omitempty"`
	Title               []string `json:"title,omitempty"`
	Author              []Author `json:"author,omitempty"`
	ContainerTitle      []string `json:"container-title,omitempty"`
	ShortContainerTitle []string `json:"short-container-title,omitempty"`
	Issued              DateInfo `json:"issued,omitempty"`
	Volume              string   `json:"volume,omitempty"`
	Issue               string   `json:"issue,omitempty"`
	Page                string   `json:"page,omitempty"`
}

// Author is one contributor on a work.
type Author struct {
	Given    string `json:"given,omitempty"`
	Family   string `json:"family,omitempty"`
	Sequence string `json:"sequence,omitempty"`
}

// DateInfo carries CrossRef's date-parts representation.
type DateInfo struct {
	DateParts [][]int `json:"date-parts,omitempty"`
}

// Year returns the year component, or 0 when absent.
func (d DateInfo) Year() int {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return 0
	}
	return d.DateParts[0][0]
}

// worksResponse is the envelope returned by the works endpoint.
type worksResponse struct {
	Status  string `json:"status"`
	Message Work   `json:"message"`
}

// Journal returns the preferred journal name: the short container title
// when present, otherwise the full container title.
func (w *Work) Journal() string {
	if len(w.ShortContainerTitle) > 0 && w.ShortContainerTitle[0] != "" {
		return w.ShortContainerTitle[0]
	}
	if len(w.ContainerTitle) > 0 {
		return w.ContainerTitle[0]
	}
	return ""
}

// FirstTitle returns the work's primary title, or "".
func (w *Work) FirstTitle() string {
	if len(w.Title) > 0 {
		return w.Title[0]
	}
	return ""
}
