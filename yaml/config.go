// Package yaml loads distillation configuration from YAML files.
package yaml

import (
	"os"
	"strings"

	"github.com/mferenc/distill"
	"gopkg.in/yaml.v3"
)

// fileConfig is the file-facing schema. Pointer fields distinguish an
// absent key from an explicit zero so file values overlay the defaults.
type fileConfig struct {
	Strategy    *string  `yaml:"strategy"`
	Coefficient *float64 `yaml:"coefficient"`
	Forced      *bool    `yaml:"forced"`
	MaxLength   *int     `yaml:"max_length"`
	UserAgent   *string  `yaml:"user_agent"`
	PrePatterns []string `yaml:"pre_patterns"`
}

// Load reads a YAML configuration file and overlays it on DefaultConfig.
// The returned config has been validated.
func Load(path string) (*distill.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, distill.Errorf(distill.EINVALID, "parse config %s: %v", path, err)
	}

	cfg := distill.DefaultConfig()
	if fc.Strategy != nil {
		// Accept the uppercase spellings older configs use.
		cfg.Strategy = distill.Strategy(strings.ToLower(*fc.Strategy))
	}
	if fc.Coefficient != nil {
		cfg.Coefficient = *fc.Coefficient
	}
	if fc.Forced != nil {
		cfg.Forced = *fc.Forced
	}
	if fc.MaxLength != nil {
		cfg.MaxLength = *fc.MaxLength
	}
	if fc.UserAgent != nil {
		cfg.UserAgent = *fc.UserAgent
	}
	if len(fc.PrePatterns) > 0 {
		cfg.PrePatterns = fc.PrePatterns
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
