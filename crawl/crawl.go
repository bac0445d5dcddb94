// Package crawl orchestrates whole-site distillation. It coordinates
// sitemap discovery, fetching, extraction, and storage of pages.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mferenc/distill"
	"github.com/mferenc/distill/bloom"
	"golang.org/x/sync/errgroup"
)

const (
	// defaultConcurrency is the worker count when Crawler.Concurrency is unset.
	defaultConcurrency = 4
	// crawlExpectedURLs sizes the Bloom filter used for URL deduplication.
	crawlExpectedURLs = 10000
	// crawlFalsePositiveRate is the acceptable dedup false positive rate.
	crawlFalsePositiveRate = 0.01
)

// Crawler distills every page of a site discovered through its sitemap.
//
// Converter selects the output: when set, pruned content is converted to
// Markdown; when nil, documents carry the extractor's reflowed text.
// Preprocessor, Documents, and Limiter are optional.
type Crawler struct {
	Sitemaps     distill.SitemapService
	Fetcher      distill.Fetcher
	Extractor    distill.Extractor
	Converter    distill.Converter
	Preprocessor *distill.Preprocessor
	Writer       distill.DocumentWriter
	Documents    distill.DocumentService
	Limiter      distill.DomainLimiter
	Concurrency  int
	RetryDelays  []time.Duration
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	url    string
	title  string
	text   string
	format string
	err    error
}

// CrawlSite discovers a site's pages through its sitemap and distills each
// one. The progress callback, if provided, receives events as the crawl
// proceeds. An empty sitemap yields an empty Result, not an error.
func (c *Crawler) CrawlSite(ctx context.Context, siteURL string, filter *distill.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := c.Sitemaps.DiscoverURLs(ctx, siteURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	// The SitemapService contract does not promise unique URLs, and
	// sitemap indexes repeat pages across child sitemaps in the wild.
	seen := bloom.NewFilter(crawlExpectedURLs, crawlFalsePositiveRate)
	var unique []string
	for _, u := range urls {
		if seen.TestAndAdd(u) {
			continue
		}
		unique = append(unique, u)
	}

	if len(unique) == 0 {
		return &Result{}, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	total := len(unique)
	emit(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan crawlResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range unique {
			g.Go(func() error {
				resultCh <- c.processURL(gctx, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Documents are saved here, in the collecting goroutine, so the
	// database sees one writer no matter the worker count.
	var result Result
	var completed int
	for res := range resultCh {
		completed++

		if res.err == nil {
			res.err = c.saveDocument(ctx, res)
		}

		if res.err != nil {
			result.Failed++
			emit(progress, ProgressEvent{
				Type:      ProgressFailed,
				Completed: completed,
				Total:     total,
				URL:       res.url,
				Error:     res.err,
			})
			continue
		}

		result.Saved++
		result.Bytes += len(res.text)
		emit(progress, ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       res.url,
		})
	}

	emit(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &result, nil
}

// processURL fetches and distills a single URL.
func (c *Crawler) processURL(ctx context.Context, pageURL string) crawlResult {
	res := crawlResult{url: pageURL}

	if c.Limiter != nil {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			res.err = err
			return res
		}
		if err := c.Limiter.Wait(ctx, parsed.Host); err != nil {
			res.err = err
			return res
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, nil, delays)
	if err != nil {
		res.err = err
		return res
	}

	if c.Preprocessor != nil {
		html = c.Preprocessor.Process(html)
	}

	extracted, err := c.Extractor.Extract(html, pageURL)
	if err != nil {
		res.err = err
		return res
	}

	res.title = extracted.Title
	res.text = extracted.Text
	res.format = distill.FormatText

	if c.Converter != nil {
		markdown, err := c.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			res.err = err
			return res
		}
		res.text = markdown
		res.format = distill.FormatMarkdown
	}

	return res
}

// saveDocument writes a distilled page to the Writer and, when a document
// service is configured, records it there as well.
func (c *Crawler) saveDocument(ctx context.Context, res crawlResult) error {
	doc := &distill.Document{
		SourceURL: res.url,
		Title:     res.title,
		Text:      res.text,
		Format:    res.format,
	}

	if err := c.Writer.WriteDocument(ctx, doc); err != nil {
		return err
	}

	if c.Documents != nil {
		if err := c.Documents.CreateDocument(ctx, doc); err != nil {
			return err
		}
	}

	return nil
}

func emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
