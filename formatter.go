package distill

import "strings"

// NormalizeSpace collapses whitespace runs to single spaces and trims the
// ends. Flattened page text, paragraph texts, and anchor texts are all
// normalized the same way so exact substring matching between them holds.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ReflowText reflows flattened page text: paragraph boundaries are
// restored, link annotations spliced in, and the result wrapped to
// maxLength columns.
func ReflowText(flat string, paragraphs []string, anchors []Anchor, baseURL string, maxLength int) (string, error) {
	text := SplitParagraphs(flat, paragraphs)
	text, err := AnnotateLinks(text, anchors, baseURL)
	if err != nil {
		return "", err
	}
	return WrapText(text, maxLength), nil
}
