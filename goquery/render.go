package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mferenc/distill"
	"golang.org/x/net/html"
)

// Collect flattens a document's text and gathers its paragraph texts and
// anchors in document order. Collection scopes to the body when one
// exists. Paragraphs that are empty after normalization are dropped;
// anchors keep empty display texts so callers can apply their own policy.
func Collect(doc *goquery.Document) (flat string, paragraphs []string, anchors []distill.Anchor) {
	scope := doc.Selection
	if body := doc.Find("body"); body.Length() > 0 {
		scope = body.First()
	}

	flat = distill.NormalizeSpace(scope.Text())

	scope.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if p := distill.NormalizeSpace(sel.Text()); p != "" {
			paragraphs = append(paragraphs, p)
		}
	})

	scope.Find("a").Each(func(_ int, sel *goquery.Selection) {
		anchors = append(anchors, distill.Anchor{
			Text: distill.NormalizeSpace(sel.Text()),
			Href: sel.AttrOr("href", ""),
		})
	})

	return flat, paragraphs, anchors
}

// RenderText reflows HTML as annotated plain text: the text is flattened,
// paragraph boundaries restored, link targets spliced in, and lines
// wrapped to maxLength. Sibling extractors use it to give their content
// the same text contract as the density engine.
func RenderText(rawHTML, baseURL string, maxLength int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", distill.Errorf(distill.EINVALID, "failed to parse HTML: %v", err)
	}

	flat, paragraphs, anchors := Collect(doc)
	return distill.ReflowText(flat, paragraphs, anchors, baseURL, maxLength)
}

// renderNode converts an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
