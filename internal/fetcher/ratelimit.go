package fetcher

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// DomainLimiter applies a token-bucket politeness limit per upstream host.
// It keeps both sources (the recruiting site and the stats API) from being
// hit faster than configured, without coordinating callers otherwise.
type DomainLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	perHost  rate.Limit
	burst    int
}

// NewDomainLimiter creates a limiter with the given per-host rate. A
// non-positive rate disables limiting.
func NewDomainLimiter(requestsPerSecond float64, burst int) *DomainLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		perHost:  rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// Wait blocks until a request for the given URL may proceed, or the
// context is cancelled.
func (dl *DomainLimiter) Wait(ctx context.Context, rawURL string) error {
	if dl == nil || dl.perHost <= 0 {
		return nil
	}
	host := hostOf(rawURL)
	if host == "" {
		// Invalid URL; let it proceed and fail in the fetcher.
		return nil
	}
	return dl.limiter(host).Wait(ctx)
}

func (dl *DomainLimiter) limiter(host string) *rate.Limiter {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	l, ok := dl.limiters[host]
	if !ok {
		l = rate.NewLimiter(dl.perHost, dl.burst)
		dl.limiters[host] = l
	}
	return l
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
