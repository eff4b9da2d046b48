package autorace

import "context"

// Fetcher retrieves page HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the body decoded to UTF-8.
	// A non-success status is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}

// DomainLimiter provides per-host rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
