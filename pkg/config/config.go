// Package config handles loading and managing esgbuddy CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the esgbuddy CLI.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Output  OutputConfig  `yaml:"output"`
	History HistoryConfig `yaml:"history"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	ContentIndexBaseRoute string `yaml:"content_index_base_route"`
	Notes                 bool   `yaml:"notes"` // annotate defaulted metrics
}

// OutputConfig controls how reports are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json or markdown
}

// HistoryConfig controls the local report history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"` // record every computed report
	Path    string `yaml:"path"`    // defaults to HistoryPath()
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			ContentIndexBaseRoute: "/disclosures",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .esgbuddy/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".esgbuddy", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the per-user data directory, ~/.cache/esgbuddy.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "esgbuddy")
}

// HistoryPath returns the default report history database path.
func HistoryPath() string {
	return filepath.Join(CacheDir(), "history.db")
}

// ReportPath returns where a computed report is written by default.
func ReportPath(companyID, reportID string) string {
	return filepath.Join(CacheDir(), "reports", slug(companyID), slug(reportID)+".json")
}

// slug makes an identifier safe to use as a single path component.
func slug(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, id)
}
