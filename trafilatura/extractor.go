package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/mferenc/distill"
	"github.com/mferenc/distill/goquery"
	"golang.org/x/net/html"
)

// Ensure Extractor implements distill.Extractor at compile time.
var _ distill.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pick the main content, then reflows
// it through the shared annotation pipeline so its text obeys the same
// contract as the density engine.
type Extractor struct {
	opts distill.Options
}

// NewExtractor creates an Extractor with the given options.
// Returns EINVALID if the options do not validate.
func NewExtractor(opts distill.Options) (*Extractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{opts: opts}, nil
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML, baseURL string) (*distill.ExtractResult, error) {
	if rawHTML == "" {
		return nil, distill.Errorf(distill.EINVALID, "empty HTML input")
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, distill.Errorf(distill.EINVALID, "base URL must include scheme and host: %q", baseURL)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeLinks:   true,
		OriginalURL:    u,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	text, err := goquery.RenderText(contentHTML, baseURL, e.opts.MaxLength)
	if err != nil {
		return nil, err
	}

	return &distill.ExtractResult{
		Title:       result.Metadata.Title,
		Text:        text,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
