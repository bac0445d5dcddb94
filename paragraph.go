package distill

import "strings"

// SplitParagraphs restores paragraph boundaries in flattened page text.
// Paragraphs are processed in document order; the first exact occurrence
// of each in the accumulating result is surrounded with newlines.
// Paragraphs that are empty after normalization, or that no longer occur
// in the text, are skipped.
func SplitParagraphs(text string, paragraphs []string) string {
	for _, p := range paragraphs {
		p = NormalizeSpace(p)
		if p == "" {
			continue
		}
		i := strings.Index(text, p)
		if i < 0 {
			continue
		}
		text = text[:i] + "\n" + p + "\n" + text[i+len(p):]
	}
	return text
}
