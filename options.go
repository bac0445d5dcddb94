package distill

// Strategy selects how the pruning threshold is derived from sibling
// densities.
type Strategy string

// Pruning strategies.
const (
	// StrategyAverage prunes nodes below the arithmetic mean of sibling
	// densities.
	StrategyAverage Strategy = "average"

	// StrategyCustom prunes nodes below coefficient * sum of sibling
	// densities.
	StrategyCustom Strategy = "custom"
)

// Options controls density pruning and text reflow.
type Options struct {
	// Strategy selects the threshold calculation.
	Strategy Strategy `json:"strategy"`

	// Coefficient scales the density sum under StrategyCustom.
	// Must be in (0, 1]. Ignored under StrategyAverage.
	Coefficient float64 `json:"coefficient"`

	// Forced exempts nodes containing more than three paragraph
	// descendants from pruning, regardless of density.
	Forced bool `json:"forced"`

	// MaxLength is the maximum output line length in characters.
	MaxLength int `json:"maxLength"`
}

// DefaultOptions returns the default pruning and reflow configuration.
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyCustom,
		Coefficient: 0.5,
		Forced:      true,
		MaxLength:   80,
	}
}

// Validate returns an error if the options contain invalid fields.
func (o Options) Validate() error {
	switch o.Strategy {
	case StrategyAverage:
	case StrategyCustom:
		if o.Coefficient <= 0 || o.Coefficient > 1 {
			return Errorf(EINVALID, "coefficient must be in (0, 1], got %g", o.Coefficient)
		}
	default:
		return Errorf(EINVALID, "unknown strategy %q", o.Strategy)
	}
	if o.MaxLength < 1 {
		return Errorf(EINVALID, "max length must be at least 1, got %d", o.MaxLength)
	}
	return nil
}

// Config is the file-loadable superset of Options.
type Config struct {
	Options

	// UserAgent is sent with every HTTP fetch.
	UserAgent string `json:"userAgent"`

	// PrePatterns are regular expressions removed from raw HTML before
	// parsing. Empty means DefaultPrePatterns.
	PrePatterns []string `json:"prePatterns"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Options:   DefaultOptions(),
		UserAgent: DefaultUserAgent,
	}
}
