package main

import (
	"fmt"

	"github.com/mferenc/distill"
	"github.com/mferenc/distill/crawl"
	"github.com/mferenc/distill/fs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	retryLog := func(format string, args ...any) {
		fmt.Fprintf(deps.Stderr, format+"\n", args...)
	}

	html, err := crawl.FetchWithRetry(deps.Ctx, c.URL, deps.Fetcher.Fetch, retryLog)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	if deps.Preprocessor != nil {
		html = deps.Preprocessor.Process(html)
	}

	result, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	text, format := result.Text, distill.FormatText
	if deps.Converter != nil {
		text, err = deps.Converter.Convert(result.ContentHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
			return err
		}
		format = distill.FormatMarkdown
	}

	doc := &distill.Document{
		SourceURL: c.URL,
		Title:     result.Title,
		Text:      text,
		Format:    format,
	}

	if c.Stdout {
		fmt.Fprintln(deps.Stdout, text)
	} else {
		writer := fs.NewWriter(c.Dir)
		path, err := writer.Write(deps.Ctx, doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %s (%s)\n", path, crawl.FormatBytes(len(text)))
	}

	// Record in history unless --no-save (Documents is nil then).
	if deps.Documents != nil {
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
			return err
		}
	}

	return nil
}
