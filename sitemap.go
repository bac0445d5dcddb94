package distill

import (
	"context"
	"regexp"
)

// SitemapService enumerates the page URLs of a site ahead of a crawl.
// Discovery reads what the site publishes (robots.txt directives, then
// /sitemap.xml, with sitemap indexes resolved recursively) instead of
// spidering links, so a site crawl knows its full work list up front.
type SitemapService interface {
	// DiscoverURLs returns the distillable page URLs under baseURL.
	// URLs outside baseURL's path prefix are dropped. A nil filter
	// keeps everything.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter narrows discovered URLs by pattern, for sites whose sitemaps
// mix documentation pages with blog posts, changelogs, and the like.
type URLFilter struct {
	// Include patterns. When non-empty, a URL must match at least one.
	Include []*regexp.Regexp

	// Exclude patterns, applied after Include. Any match drops the URL.
	Exclude []*regexp.Regexp
}

// Match reports whether the URL survives the filter. A nil filter
// passes everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
