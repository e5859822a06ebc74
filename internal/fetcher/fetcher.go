package fetcher

import (
	"context"

	"github.com/statside/statside/internal/types"
)

// Fetcher retrieves the raw document for a request. Implementations do not
// retry; a failed fetch is terminal for the call.
type Fetcher interface {
	// Fetch executes the request and returns the response.
	Fetch(ctx context.Context, req *types.Request) (*types.Response, error)

	// Close releases resources.
	Close() error

	// Type returns the fetcher type identifier.
	Type() string
}
