package types

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for common failure modes.
var (
	ErrTimeout       = errors.New("request timed out")
	ErrEmptyResponse = errors.New("empty response body")
	ErrInvalidURL    = errors.New("invalid URL")
	ErrNoFetcher     = errors.New("no fetcher available for request")
	ErrMissingYear   = errors.New("year is required")
)

// FetchError wraps errors that occur during fetching. It is terminal for
// the call; nothing above the fetcher retries.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
	Retryable  bool
	RetryAfter time.Duration // populated from Retry-After header on HTTP 429
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) IsRetryable() bool { return e.Retryable }

// ParseError wraps errors that occur while building the document tree.
type ParseError struct {
	URL      string
	Selector string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("parse error for %s (selector=%q): %v", e.URL, e.Selector, e.Err)
	}
	return fmt.Sprintf("parse error for %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigError reports an unsupported parameter value. It is raised before
// any network call is made.
type ConfigError struct {
	Param string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unsupported %s: %q", e.Param, e.Value)
}

// StorageError wraps errors that occur during storage/export.
type StorageError struct {
	Backend string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error (%s): %v", e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
