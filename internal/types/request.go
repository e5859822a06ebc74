package types

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Request represents a single upstream document fetch. Every call is
// independent: there is no queueing, depth, or retry bookkeeping here.
type Request struct {
	// URL is the target URL to fetch.
	URL *url.URL

	// Method is the HTTP method. Defaults to GET.
	Method string

	// Headers are custom HTTP headers to send with the request.
	Headers http.Header

	// Body is the request body for POST requests.
	Body []byte

	// Timeout overrides the configured request timeout for this request.
	Timeout time.Duration

	// FetcherType selects the transport: "http" or "browser".
	FetcherType string

	// Meta stores arbitrary metadata attached to this request.
	Meta map[string]any

	// CreatedAt is when this request was created.
	CreatedAt time.Time
}

// NewRequest creates a new GET Request for the given URL.
func NewRequest(rawURL string) (*Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	return &Request{
		URL:         u,
		Method:      http.MethodGet,
		Headers:     make(http.Header),
		FetcherType: "http",
		Meta:        make(map[string]any),
		CreatedAt:   time.Now(),
	}, nil
}

// URLString returns the string representation of the request URL.
func (r *Request) URLString() string {
	if r.URL == nil {
		return ""
	}
	return r.URL.String()
}

// Domain returns the hostname of the request URL.
func (r *Request) Domain() string {
	if r.URL == nil {
		return ""
	}
	return r.URL.Hostname()
}
