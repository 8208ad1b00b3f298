package farmanote

import "context"

// Fetcher retrieves the body of a remote resource.
// Implementations bound each call with a timeout and may fall back to a
// secondary proxy fetch when the direct request fails.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the response body.
	// The context controls cancellation on top of the implementation's
	// own per-request timeout.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
