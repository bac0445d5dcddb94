package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mferenc/distill"
	"github.com/mferenc/distill/crawl"
	"github.com/mferenc/distill/goquery"
	"github.com/mferenc/distill/htmltomarkdown"
	distillhttp "github.com/mferenc/distill/http"
	"github.com/mferenc/distill/readability"
	"github.com/mferenc/distill/rod"
	distillslog "github.com/mferenc/distill/slog"
	"github.com/mferenc/distill/sqlite"
	"github.com/mferenc/distill/trafilatura"
	"github.com/mferenc/distill/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	DocumentService distill.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("distill"),
		kong.Description("Distill the main content out of HTML pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'distill --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cmd := strings.Fields(kongCtx.Command())[0]
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Open the database for commands that read or record documents.
	needsDB := cmd == "history" || cmd == "show" ||
		(cmd == "fetch" && !cli.Fetch.NoSave) ||
		(cmd == "site" && !cli.Site.NoSave)
	if needsDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DISTILL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.DocumentService = sqlite.NewDocumentService(m.DB)
		deps.Documents = m.DocumentService
	}

	if cmd == "fetch" {
		cfg, err := resolveConfig(cli.Fetch.OptionFlags)
		if err != nil {
			return err
		}
		if err := wirePipeline(deps, cli.Fetch.OptionFlags, cfg, cli.Verbose, logger); err != nil {
			return err
		}

		fetcher, err := newFetcher(cli.Fetch.FetchFlags, cfg, cli.Verbose, logger, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher
	}

	if cmd == "file" {
		cfg, err := resolveConfig(cli.File.OptionFlags)
		if err != nil {
			return err
		}
		if err := wirePipeline(deps, cli.File.OptionFlags, cfg, cli.Verbose, logger); err != nil {
			return err
		}
	}

	if cmd == "site" {
		cfg, err := resolveConfig(cli.Site.OptionFlags)
		if err != nil {
			return err
		}
		if err := wirePipeline(deps, cli.Site.OptionFlags, cfg, cli.Verbose, logger); err != nil {
			return err
		}

		fetcher, err := newFetcher(cli.Site.FetchFlags, cfg, cli.Verbose, logger, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher

		var sitemaps distill.SitemapService = distillhttp.NewSitemapService(nil)
		if cli.Verbose {
			sitemaps = distillslog.NewLoggingSitemapService(sitemaps, logger)
		}
		deps.Sitemaps = sitemaps

		deps.Crawler = &crawl.Crawler{
			Sitemaps:     deps.Sitemaps,
			Fetcher:      deps.Fetcher,
			Extractor:    deps.Extractor,
			Converter:    deps.Converter,
			Preprocessor: deps.Preprocessor,
			Documents:    deps.Documents,
			Limiter:      crawl.NewDomainLimiter(cli.Site.RPS),
			Concurrency:  cli.Site.Concurrency,
			// Writer is set by SiteCmd.Run once the output store exists.
		}
	}

	return kongCtx.Run(deps)
}

// resolveConfig merges flags over the config file over the defaults.
func resolveConfig(opt OptionFlags) (distill.Config, error) {
	cfg := distill.DefaultConfig()
	if opt.Config != "" {
		loaded, err := yaml.Load(opt.Config)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	if opt.Strategy != nil {
		cfg.Strategy = distill.Strategy(*opt.Strategy)
	}
	if opt.Coefficient != nil {
		cfg.Coefficient = *opt.Coefficient
	}
	if opt.Forced != nil {
		cfg.Forced = *opt.Forced
	}
	if opt.MaxLength != nil {
		cfg.MaxLength = *opt.MaxLength
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// wirePipeline builds the extractor, preprocessor, and converter for a
// command from its resolved configuration.
func wirePipeline(deps *Dependencies, opt OptionFlags, cfg distill.Config, verbose bool, logger *slog.Logger) error {
	extractor, err := newExtractor(opt.Engine, cfg.Options)
	if err != nil {
		return err
	}
	if verbose {
		extractor = distillslog.NewLoggingExtractor(extractor, logger)
	}
	deps.Extractor = extractor

	// The regex pre-strip belongs to the density engine; trafilatura and
	// readability do their own boilerplate removal and read the meta tags
	// the pre-strip would delete.
	if opt.Engine == "density" {
		pre, err := distill.NewPreprocessor(cfg.PrePatterns...)
		if err != nil {
			return err
		}
		deps.Preprocessor = pre
	}

	if opt.Markdown {
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return nil
}

// newExtractor selects the extraction engine.
func newExtractor(engine string, opts distill.Options) (distill.Extractor, error) {
	switch engine {
	case "trafilatura":
		return trafilatura.NewExtractor(opts)
	case "readability":
		return readability.NewExtractor(opts)
	default:
		return goquery.NewExtractor(opts)
	}
}

// newFetcher builds the static or rendering fetcher for a command.
func newFetcher(flags FetchFlags, cfg distill.Config, verbose bool, logger *slog.Logger, stderr io.Writer) (distill.Fetcher, error) {
	var fetcher distill.Fetcher

	if flags.Render {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(flags.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		userAgent := cfg.UserAgent
		if flags.UserAgent != nil {
			userAgent = *flags.UserAgent
		}
		fetcher = distillhttp.NewFetcher(
			distillhttp.WithTimeout(flags.Timeout),
			distillhttp.WithUserAgent(userAgent),
		)
	}

	if verbose {
		fetcher = distillslog.NewLoggingFetcher(fetcher, logger)
	}
	return fetcher, nil
}

func defaultDBPath() string {
	if path := os.Getenv("DISTILL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "distill.db"
	}
	dir := filepath.Join(home, ".distill")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "distill.db")
}
