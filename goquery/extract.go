package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mferenc/distill"
)

// Ensure Extractor implements distill.Extractor at compile time.
var _ distill.Extractor = (*Extractor)(nil)

// Extractor distills pages by density pruning: low-density subtrees are
// removed and the surviving text is reflowed with link annotations.
type Extractor struct {
	opts   distill.Options
	pruner *Pruner
}

// NewExtractor creates an Extractor with the given options.
// Returns EINVALID if the options do not validate.
func NewExtractor(opts distill.Options) (*Extractor, error) {
	pruner, err := NewPruner(opts)
	if err != nil {
		return nil, err
	}
	return &Extractor{opts: opts, pruner: pruner}, nil
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML, baseURL string) (*distill.ExtractResult, error) {
	if rawHTML == "" {
		return nil, distill.Errorf(distill.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, distill.Errorf(distill.EINVALID, "failed to parse HTML: %v", err)
	}

	// The head rarely survives pruning, so take the title first.
	title := strings.TrimSpace(doc.Find("title").First().Text())

	e.pruner.Prune(doc.Get(0))

	contentHTML, err := renderNode(doc.Get(0))
	if err != nil {
		return nil, err
	}

	flat, paragraphs, anchors := Collect(doc)
	text, err := distill.ReflowText(flat, paragraphs, anchors, baseURL, e.opts.MaxLength)
	if err != nil {
		return nil, err
	}

	return &distill.ExtractResult{
		Title:       title,
		Text:        text,
		ContentHTML: contentHTML,
	}, nil
}
