package distill

import "regexp"

// DefaultPrePatterns match the HTML regions removed before parsing:
// scripts, styles, metadata, and structural boilerplate that density
// pruning would otherwise have to discover.
var DefaultPrePatterns = []string{
	`(?is)<script\b.*?</script>`,
	`(?is)<style\b.*?</style>`,
	`(?is)<meta\b.*?>`,
	`(?is)<nav\b.*?</nav>`,
	`(?is)<footer\b.*?</footer>`,
	`(?is)<header\b.*?</header>`,
	`(?is)<form\b.*?</form>`,
}

// Preprocessor strips matched regions from raw HTML before parsing.
type Preprocessor struct {
	patterns []*regexp.Regexp
}

// NewPreprocessor compiles the given patterns into a Preprocessor.
// With no arguments it uses DefaultPrePatterns.
// Returns EINVALID if a pattern does not compile.
func NewPreprocessor(patterns ...string) (*Preprocessor, error) {
	if len(patterns) == 0 {
		patterns = DefaultPrePatterns
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid preprocess pattern %q: %s", p, err)
		}
		compiled = append(compiled, re)
	}

	return &Preprocessor{patterns: compiled}, nil
}

// Process removes every pattern match from the HTML.
func (p *Preprocessor) Process(html string) string {
	for _, re := range p.patterns {
		html = re.ReplaceAllString(html, "")
	}
	return html
}
