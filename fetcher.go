package distill

import "context"

// DefaultUserAgent is sent with HTTP fetches unless overridden. Some sites
// refuse requests without a browser-looking user agent.
const DefaultUserAgent = "Mozilla/5.0"

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch retrieves the page at the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
