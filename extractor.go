package distill

// ExtractResult holds the distilled content of an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// Text is the main content as reflowed plain text with inline
	// link annotations.
	Text string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The base URL resolves relative link targets in annotations and
	// must carry a scheme and host.
	Extract(html, baseURL string) (*ExtractResult, error)
}
