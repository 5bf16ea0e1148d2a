package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the CrossRef REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 15 * time.Second

	// RateLimit keeps requests inside CrossRef's polite-pool expectations.
	RateLimit = 3.0

	// DefaultMailto identifies the tool to the polite pool when no contact
	// address is configured.
	DefaultMailto = "user@example.com"
)

// APIError is a non-2xx response from the CrossRef API.
type APIError struct {
	StatusCode int
	DOI        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("crossref: status %d for DOI %s", e.StatusCode, e.DOI)
}

// Client is a rate-limited HTTP client for the CrossRef works endpoint.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithMailto sets the contact address sent in the User-Agent for the
// polite pool.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		if mailto != "" {
			c.mailto = mailto
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a CrossRef API client. The contact address defaults to
// the CROSSREF_MAILTO environment variable when set.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		mailto:     DefaultMailto,
	}

	if mailto := os.Getenv("CROSSREF_MAILTO"); mailto != "" {
		c.mailto = mailto
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetWork fetches the metadata record for a DOI.
func (c *Client) GetWork(ctx context.Context, doi string) (*Work, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := c.baseURL + "/works/" + url.PathEscape(doi)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("docfield/1.0 (mailto:%s)", c.mailto))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", doi, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, DOI: doi}
	}

	var envelope worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding response for %s: %w", doi, err)
	}
	return &envelope.Message, nil
}
