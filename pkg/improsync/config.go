package improsync

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/freeimpro/improsync/pkg/improsync/match"
)

// Config holds the analysis parameters. Zero values are not meaningful
// defaults; build one with defaultConfig via New, or decode a parameters
// file with LoadConfig.
type Config struct {
	// Threshold is the minimal step in the control signal that counts as
	// an IG. Positive selects upward steps, <= 0 downward steps.
	Threshold float64 `yaml:"threshold"`
	// Tau is the timescale (in samples) for deduplication and matching.
	Tau int `yaml:"tau"`
	// Causal restricts matching to forward-in-time responses.
	Causal bool `yaml:"causal"`
	// Clean deduplicates event sets with tolerance Tau before and during
	// matching.
	Clean bool `yaml:"clean"`
	// Fraction returns normalized fractions instead of raw counts.
	Fraction bool `yaml:"fraction"`

	Logger *logrus.Logger `yaml:"-"`
}

// Option customizes the analyzer configuration.
type Option func(*Config)

// WithThreshold sets the IG detection threshold.
func WithThreshold(threshold float64) Option {
	return func(c *Config) {
		c.Threshold = threshold
	}
}

// WithTau sets the matching and deduplication timescale.
func WithTau(tau int) Option {
	return func(c *Config) {
		c.Tau = tau
	}
}

// WithCausal toggles causal (forward-in-time) matching.
func WithCausal(causal bool) Option {
	return func(c *Config) {
		c.Causal = causal
	}
}

// WithClean toggles tau-tolerant deduplication of event and match sets.
func WithClean(clean bool) Option {
	return func(c *Config) {
		c.Clean = clean
	}
}

// WithFraction toggles normalized fractions instead of raw counts.
func WithFraction(fraction bool) Option {
	return func(c *Config) {
		c.Fraction = fraction
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func defaultConfig() *Config {
	return &Config{
		Threshold: 4,
		Tau:       2,
		Clean:     true,
	}
}

// LoadConfig reads analysis parameters from a YAML file. Missing keys keep
// their defaults, so a campaign only pins what it changes.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg := defaultConfig()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config %s: %w", path, err)
	}
	return cfg, nil
}

// params flattens the configuration into the matcher's parameter set.
func (c *Config) params() match.Params {
	return match.Params{
		Tau:      c.Tau,
		Causal:   c.Causal,
		Clean:    c.Clean,
		Fraction: c.Fraction,
	}
}
