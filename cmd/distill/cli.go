package main

import (
	"context"
	"io"
	"time"

	"github.com/mferenc/distill"
	"github.com/mferenc/distill/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Preprocessor *distill.Preprocessor
	Fetcher      distill.Fetcher
	Extractor    distill.Extractor
	Converter    distill.Converter
	Sitemaps     distill.SitemapService
	Documents    distill.DocumentService
	Crawler      *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline stages to stderr"`

	Fetch   FetchCmd   `cmd:"" help:"Distill a single page from the web"`
	File    FileCmd    `cmd:"" help:"Distill a local HTML file"`
	Site    SiteCmd    `cmd:"" help:"Distill every page of a site via its sitemap"`
	History HistoryCmd `cmd:"" help:"List stored documents"`
	Show    ShowCmd    `cmd:"" help:"Print a stored document"`
}

// OptionFlags configure pruning and reflow. Pointer fields overlay the
// config file and defaults only when set on the command line.
type OptionFlags struct {
	Config      string   `help:"YAML config file" type:"path"`
	Engine      string   `default:"density" enum:"density,trafilatura,readability" help:"Extraction engine"`
	Strategy    *string  `help:"Pruning threshold strategy: average or custom"`
	Coefficient *float64 `help:"Density coefficient for the custom strategy, in (0, 1]"`
	Forced      *bool    `help:"Exempt nodes with more than three paragraphs from pruning"`
	MaxLength   *int     `name:"max-length" help:"Maximum output line length"`
	Markdown    bool     `short:"m" help:"Emit Markdown instead of reflowed text"`
}

// FetchFlags configure network fetching.
type FetchFlags struct {
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	UserAgent *string       `name:"user-agent" help:"User-Agent header for fetches"`
	Render    bool          `help:"Render pages in headless Chrome before distilling"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL string `arg:"" help:"Page URL to distill"`
	OptionFlags
	FetchFlags
	Dir    string `short:"d" default:"." help:"Directory for the output file"`
	Stdout bool   `help:"Print the distilled text instead of writing a file"`
	NoSave bool   `name:"no-save" help:"Skip recording the document in the database"`
}

// FileCmd is the "file" subcommand.
type FileCmd struct {
	Path    string `arg:"" type:"existingfile" help:"Local HTML file to distill"`
	BaseURL string `name:"base-url" default:"http://localhost" help:"Base URL for resolving relative links"`
	OptionFlags
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	URL string `arg:"" help:"Site URL whose sitemap will be crawled"`
	OptionFlags
	FetchFlags
	Dir         string   `short:"d" default:"." help:"Base directory for the site tree"`
	Name        string   `help:"Output directory name (default: the site host)"`
	Filter      []string `short:"F" name:"filter" help:"Only crawl URLs matching regex (repeatable)"`
	Exclude     []string `short:"x" help:"Skip URLs matching regex (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"1" help:"Max requests per second per domain"`
	NoSave      bool     `name:"no-save" help:"Skip recording documents in the database"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only documents fetched from this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of documents to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Document ID"`
}
