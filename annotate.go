package distill

import (
	"net/url"
	"regexp"
	"strings"
)

// Anchor is a link collected from a pruned tree: display text and target.
type Anchor struct {
	Text string
	Href string
}

// markerRE matches link markers already spliced into the text.
var markerRE = regexp.MustCompile(`\[https?://[^\s\]]*\]`)

// AnnotateLinks splices link-target markers into text. Every occurrence of
// an anchor's display text is followed by a bracketed target; targets that
// do not contain "http" are treated as relative and prefixed with the base
// URL's scheme and host. When several anchors share a display text the
// last one wins. Text inside previously inserted markers is never
// rewritten. Anchors with empty display text are skipped.
//
// Returns EINVALID if the base URL lacks a scheme or host.
func AnnotateLinks(text string, anchors []Anchor, baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALID, "base URL must include scheme and host: %q", baseURL)
	}
	base := u.Scheme + "://" + u.Host

	markers := make(map[string]string, len(anchors))
	order := make([]string, 0, len(anchors))
	for _, a := range anchors {
		display := NormalizeSpace(a.Text)
		if display == "" {
			continue
		}
		if _, seen := markers[display]; !seen {
			order = append(order, display)
		}
		href := a.Href
		if !strings.Contains(href, "http") {
			href = base + href
		}
		markers[display] = "[" + href + "]"
	}

	for _, display := range order {
		text = replaceOutsideMarkers(text, display, display+" "+markers[display])
	}
	return text, nil
}

// replaceOutsideMarkers replaces old with new in the stretches of text
// that are not already link markers.
func replaceOutsideMarkers(text, old, new string) string {
	spans := markerRE.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return strings.ReplaceAll(text, old, new)
	}

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, span := range spans {
		b.WriteString(strings.ReplaceAll(text[prev:span[0]], old, new))
		b.WriteString(text[span[0]:span[1]])
		prev = span[1]
	}
	b.WriteString(strings.ReplaceAll(text[prev:], old, new))
	return b.String()
}
