package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Expected defaults to load, got %v", err)
	}

	if cfg.Subreddit != "ShortSqueezeStonks" {
		t.Errorf("Expected default subreddit, got %q", cfg.Subreddit)
	}
	if cfg.ThreadTitlePrefix != "Daily Squeeze Scanner + Discussion" {
		t.Errorf("Expected default title prefix, got %q", cfg.ThreadTitlePrefix)
	}
	if cfg.LookbackHours != 24 {
		t.Errorf("Expected lookback_hours 24, got %d", cfg.LookbackHours)
	}
	if cfg.MaxTickers != 12 {
		t.Errorf("Expected max_tickers 12, got %d", cfg.MaxTickers)
	}
	if cfg.CrossMaxTickers != 8 {
		t.Errorf("Expected cross_max_tickers 8, got %d", cfg.CrossMaxTickers)
	}
	if cfg.Source != "API" {
		t.Errorf("Expected source API, got %q", cfg.Source)
	}
	if cfg.DryRun {
		t.Error("Expected dry_run to default to false")
	}
	if len(cfg.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", cfg.Warnings)
	}
}

func TestCrossSubDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
cross_subs_enabled: true
cross_subs:
  - name: stocks
`))
	if err != nil {
		t.Fatal(err)
	}

	cs := cfg.CrossSubs[0]
	if cs.Weight != 0.35 {
		t.Errorf("Expected default weight 0.35, got %.2f", cs.Weight)
	}
	if cs.Mode != "hot" {
		t.Errorf("Expected default mode hot, got %q", cs.Mode)
	}
	if cs.LimitPosts != 40 {
		t.Errorf("Expected default limit_posts 40, got %d", cs.LimitPosts)
	}
	if cs.LookbackHours != 24 {
		t.Errorf("Expected lookback inherited from top level, got %d", cs.LookbackHours)
	}
}

func TestGuardrailWeightWarnsButApplies(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
cross_subs_enabled: true
cross_subs:
  - name: stocks
    weight: 0.8
`))
	if err != nil {
		t.Fatal(err)
	}

	// Above the 0.6 ceiling: warned, never clamped.
	if got := cfg.CrossSubs[0].Weight; got != 0.8 {
		t.Errorf("Expected weight 0.8 to be applied as configured, got %.2f", got)
	}
	if len(cfg.Warnings) != 1 || !strings.Contains(cfg.Warnings[0], "recommended ceiling") {
		t.Errorf("Expected a guardrail warning, got %v", cfg.Warnings)
	}
}

func TestWeightAtOrAbovePrimaryIsClamped(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
cross_subs_enabled: true
cross_subs:
  - name: stocks
    weight: 1.2
`))
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.CrossSubs[0].Weight; got != 0.99 {
		t.Errorf("Expected weight clamped below 1.0, got %.2f", got)
	}
	if len(cfg.Warnings) != 1 || !strings.Contains(cfg.Warnings[0], "clamped") {
		t.Errorf("Expected a clamp warning, got %v", cfg.Warnings)
	}
}

func TestValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad source", "source: FTP\n"},
		{"negative lookback", "lookback_hours: -1\n"},
		{"bad mode", "cross_subs:\n  - name: stocks\n    mode: rising\n"},
		{"missing sub name", "cross_subs:\n  - weight: 0.2\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tc.yaml)); err == nil {
				t.Errorf("Expected validation to fail for %s", tc.name)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}
