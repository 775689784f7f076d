// Package config provides configuration management for smartsearch.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the smartsearch configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Search  SearchConfig  `yaml:"search"`
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
}

// CatalogConfig holds catalog data settings.
type CatalogConfig struct {
	Path string `yaml:"path"` // Product JSON file (empty = bundled demo data)
}

// SearchConfig holds ranking and debounce settings.
type SearchConfig struct {
	DebounceMs  int `yaml:"debounce_ms"`   // Delay after last keystroke
	MaxResults  int `yaml:"max_results"`   // Result cap per evaluation
	MinQueryLen int `yaml:"min_query_len"` // Minimum trimmed query length
	HistorySize int `yaml:"history_size"`  // Recent-query log cap
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // SQLite path (empty = default)
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	NoColor bool `yaml:"no_color"` // Disable colored output
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			DebounceMs:  150,
			MaxResults:  8,
			MinQueryLen: 2,
			HistorySize: 5,
		},
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(DefaultPaths().ConfigDir, "config.yaml")
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize clamps nonsense values back to the defaults.
func (c *Config) normalize() {
	def := Default().Search
	if c.Search.DebounceMs <= 0 {
		c.Search.DebounceMs = def.DebounceMs
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = def.MaxResults
	}
	if c.Search.MinQueryLen <= 0 {
		c.Search.MinQueryLen = def.MinQueryLen
	}
	if c.Search.HistorySize <= 0 {
		c.Search.HistorySize = def.HistorySize
	}
}
