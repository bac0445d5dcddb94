package readability

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/mferenc/distill"
	"github.com/mferenc/distill/goquery"
)

// Ensure Extractor implements distill.Extractor at compile time.
var _ distill.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to pick the main content, then reflows
// it through the shared annotation pipeline.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, err
	}

	text, err := goquery.RenderText(article.Content, baseURL, e.opts.MaxLength)
	if err != nil {
		return nil, err
	}

	return &distill.ExtractResult{
		Title:       article.Title,
		Text:        text,
		ContentHTML: article.Content,
	}, nil
}
