package distill

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenRE classifies text into wrap-atomic tokens: link markers, word
// runs, and single whitespace or punctuation characters. Characters
// outside these classes are dropped.
var tokenRE = regexp.MustCompile(`\[https?://\S+\]|[\p{L}\p{N}_]+|[\s.,!?;()\-]`)

// WrapText reflows text to lines of at most maxLength characters. Tokens
// are atomic, so a token longer than maxLength occupies a line by itself.
// Newlines already present in the text end the current line; newlines at
// the start of a line are swallowed, which collapses paragraph breaks to a
// single line break.
//
// A maxLength below 1 returns the text unchanged.
func WrapText(text string, maxLength int) string {
	if maxLength < 1 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	length := 1
	for _, word := range tokenRE.FindAllString(text, -1) {
		if length == 1 {
			word = strings.TrimLeftFunc(word, unicode.IsSpace)
		}
		length += utf8.RuneCountInString(word)
		switch {
		case word == "\n":
			b.WriteByte('\n')
			length = 1
		case length > maxLength:
			b.WriteByte('\n')
			b.WriteString(word)
			length = utf8.RuneCountInString(word) + 1
		case length == maxLength:
			b.WriteString(word)
			b.WriteByte('\n')
			length = 1
		default:
			b.WriteString(word)
		}
	}

	return strings.ReplaceAll(b.String(), "\n\n\n", "\n")
}
