package namelist

import "context"

// Fetcher retrieves raw page markup from URLs.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the body.
	// Any response other than success is returned as an error; the
	// context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
