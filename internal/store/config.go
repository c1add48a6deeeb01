package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Guardrail ceiling for cross-community weights. Advisory only: weights above
// it are kept as configured but a warning is collected at load time.
const crossWeightCeiling = 0.6

// CrossSub configures one secondary community for the viral radar.
type CrossSub struct {
	Name          string  `yaml:"name"`
	Weight        float64 `yaml:"weight"`
	Mode          string  `yaml:"mode"` // hot, new or top
	LimitPosts    int     `yaml:"limit_posts"`
	LookbackHours int     `yaml:"lookback_hours"`
}

type Config struct {
	Subreddit         string `yaml:"subreddit"`
	HubURL            string `yaml:"hub_url"`
	ThreadTitlePrefix string `yaml:"thread_title_prefix"`
	LookbackHours     int    `yaml:"lookback_hours"`
	MaxTickers        int    `yaml:"max_tickers"`
	DryRun            bool   `yaml:"dry_run"`
	Source            string `yaml:"source"` // API or SCRAPE

	CrossSubsEnabled bool       `yaml:"cross_subs_enabled"`
	CrossMaxTickers  int        `yaml:"cross_max_tickers"`
	CrossSubs        []CrossSub `yaml:"cross_subs"`

	Stopwords    []string `yaml:"stopwords"` // extends the built-in set
	AllowTickers []string `yaml:"allow_tickers"`
	DenyTickers  []string `yaml:"deny_tickers"`

	// Warnings collected while loading (advisory weight guardrail, clamping).
	// Surfaced by the caller, never fatal.
	Warnings []string `yaml:"-"`
}

func (c *Config) Validate() error {
	if c.Subreddit == "" {
		return errors.New("subreddit cannot be empty")
	}
	if c.ThreadTitlePrefix == "" {
		return errors.New("thread_title_prefix cannot be empty")
	}
	if c.LookbackHours <= 0 {
		return fmt.Errorf("lookback_hours must be positive, got %d", c.LookbackHours)
	}
	if c.MaxTickers <= 0 {
		return fmt.Errorf("max_tickers must be positive, got %d", c.MaxTickers)
	}
	if c.Source != "API" && c.Source != "SCRAPE" {
		return fmt.Errorf("invalid source '%s': must be 'API' or 'SCRAPE'", c.Source)
	}
	for i, cs := range c.CrossSubs {
		if cs.Name == "" {
			return fmt.Errorf("cross_subs[%d]: name cannot be empty", i)
		}
		if cs.Mode != "hot" && cs.Mode != "new" && cs.Mode != "top" {
			return fmt.Errorf("cross_subs[%d]: mode must be 'hot', 'new' or 'top', got '%s'", i, cs.Mode)
		}
		if cs.Weight <= 0 {
			return fmt.Errorf("cross_subs[%d]: weight must be positive, got %.2f", i, cs.Weight)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	c.applyDefaults()
	c.normalizeWeights()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Subreddit == "" {
		c.Subreddit = "ShortSqueezeStonks"
	}
	if c.HubURL == "" {
		c.HubURL = "https://www.reddit.com/r/ShortSqueezeStonks/s/RZJwT0l6wX"
	}
	if c.ThreadTitlePrefix == "" {
		c.ThreadTitlePrefix = "Daily Squeeze Scanner + Discussion"
	}
	if c.LookbackHours == 0 {
		c.LookbackHours = 24
	}
	if c.MaxTickers == 0 {
		c.MaxTickers = 12
	}
	if c.CrossMaxTickers == 0 {
		c.CrossMaxTickers = 8
	}
	if c.Source == "" {
		c.Source = "API"
	}
	for i := range c.CrossSubs {
		cs := &c.CrossSubs[i]
		if cs.Weight == 0 {
			cs.Weight = 0.35
		}
		if cs.Mode == "" {
			cs.Mode = "hot"
		}
		if cs.LimitPosts == 0 {
			cs.LimitPosts = 40
		}
		if cs.LookbackHours == 0 {
			cs.LookbackHours = c.LookbackHours
		}
	}
}

// normalizeWeights enforces that every secondary weight stays strictly below
// the primary weight of 1.0, and records an advisory warning for weights at
// or above the guardrail ceiling. Guardrail breaches are NOT clamped: the
// configured weight is applied as-is.
func (c *Config) normalizeWeights() {
	for i := range c.CrossSubs {
		cs := &c.CrossSubs[i]
		if cs.Weight >= 1.0 {
			c.Warnings = append(c.Warnings, fmt.Sprintf(
				"cross_subs[%s]: weight %.2f meets or exceeds the primary weight, clamped to 0.99", cs.Name, cs.Weight))
			cs.Weight = 0.99
			continue
		}
		if cs.Weight >= crossWeightCeiling {
			c.Warnings = append(c.Warnings, fmt.Sprintf(
				"cross_subs[%s]: weight %.2f exceeds the recommended ceiling of %.1f, applying it anyway", cs.Name, cs.Weight, crossWeightCeiling))
		}
	}
}
