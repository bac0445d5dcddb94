// Package rod fetches rendered HTML with a headless Chrome browser.
// It serves pages that assemble their content with JavaScript, where a
// plain HTTP GET returns an empty shell.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/mferenc/distill"
)

// Ensure Fetcher implements distill.Fetcher at compile time.
var _ distill.Fetcher = (*Fetcher)(nil)

// DefaultFetchTimeout is the maximum time a single page render may take.
const DefaultFetchTimeout = 30 * time.Second

// serializeScript captures the document including open shadow roots.
// DOM.getOuterHTML skips shadow DOM, so serialization happens in the page:
// shadow roots are emitted as declarative <template shadowrootmode> blocks.
const serializeScript = `() => {
	if (document.documentElement.getHTML) {
		const shadowRoots = [];
		const collect = (root) => {
			for (const el of root.querySelectorAll('*')) {
				if (el.shadowRoot) {
					shadowRoots.push(el.shadowRoot);
					collect(el.shadowRoot);
				}
			}
		};
		collect(document);
		return '<!DOCTYPE html>' + document.documentElement.getHTML({ shadowRoots });
	}
	return '<!DOCTYPE html>' + document.documentElement.outerHTML;
}`

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	fetchTimeout time.Duration
	closed       atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the maximum duration of a single Fetch call,
// covering navigation, load, and serialization. Defaults to
// DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// WithMaxPages sets how many pages the underlying browser renders before
// it is recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.manager.maxPages = n
	}
}

// NewFetcher creates a new Fetcher backed by a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		manager:      &BrowserManager{maxPages: DefaultMaxPages},
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.manager.launchBrowser(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to the URL and returns the fully rendered HTML,
// including the content of open shadow roots.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", distill.Errorf(distill.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.fetchTimeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	res, err := page.Eval(serializeScript)
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return res.Value.Str(), nil
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}
