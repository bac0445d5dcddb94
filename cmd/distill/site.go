package main

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/mferenc/distill"
	"github.com/mferenc/distill/crawl"
	"github.com/mferenc/distill/fs"
)

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *distill.URLFilter
	if len(c.Filter) > 0 || len(c.Exclude) > 0 {
		urlFilter = &distill.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
		for _, pattern := range c.Exclude {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid exclude pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Exclude = append(urlFilter.Exclude, re)
		}
	}

	name := c.Name
	if name == "" {
		parsed, err := url.Parse(c.URL)
		if err != nil || parsed.Host == "" {
			fmt.Fprintf(deps.Stderr, "error: site URL must be absolute: %q\n", c.URL)
			return distill.Errorf(distill.EINVALID, "site URL must be absolute: %q", c.URL)
		}
		name = parsed.Host
	}

	store := fs.NewSiteStore(c.Dir, name)
	deps.Crawler.Writer = store

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d URLs\n", event.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", event.Completed, event.Total, crawl.TruncateURL(event.URL, 40))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressFinished:
			// Summary printed after crawl completes
		}
	}

	result, err := deps.Crawler.CrawlSite(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	if result.Saved == 0 {
		_ = store.Abort()
		fmt.Fprintln(deps.Stdout, "No pages saved")
		return nil
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}

	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Saved %d pages (%s), %d failed\n",
			result.Saved, crawl.FormatBytes(result.Bytes), result.Failed)
	} else {
		fmt.Fprintf(deps.Stdout, "Saved %d pages (%s)\n",
			result.Saved, crawl.FormatBytes(result.Bytes))
	}

	return nil
}
