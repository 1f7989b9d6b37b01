// Package config provides reading and writing of glint configuration.
// Supports both global (~/.glint/config.yaml) and local (.glint/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
// The GLINT_DIR environment variable overrides the global directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mnl-au/glint/internal/search"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.glint/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .glint/config.yaml
	ScopeLocal
)

// Catalog holds catalog-related configuration options.
type Catalog struct {
	Path string `yaml:"path,omitempty"`
}

// Search holds search engine configuration options.
type Search struct {
	MaxResults     *int    `yaml:"max_results,omitempty"`
	MinQueryLength *int    `yaml:"min_query_length,omitempty"`
	DebounceMs     *int    `yaml:"debounce_ms,omitempty"`
	Fuzzy          *bool   `yaml:"fuzzy,omitempty"`
	Fields         *string `yaml:"fields,omitempty"` // comma-separated
}

// Default search values applied when not configured.
const (
	DefaultMaxResults     = 20
	DefaultMinQueryLength = 2
	DefaultDebounceMs     = 300
	DefaultFuzzy          = true
)

// Validation bounds for configuration values.
const (
	MinMaxResults     = 1
	MaxMaxResults     = 1000
	MinMinQueryLength = 1
	MaxMinQueryLength = 64
	MinDebounceMs     = 0
	MaxDebounceMs     = 60000
)

// Config contains configuration for glint.
type Config struct {
	Catalog Catalog `yaml:"catalog,omitempty"`
	Search  Search  `yaml:"search,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Search.MaxResults != nil {
		v := *c.Search.MaxResults
		if v < MinMaxResults || v > MaxMaxResults {
			return fmt.Errorf("%w: max_results must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxResults, MaxMaxResults, v)
		}
	}
	if c.Search.MinQueryLength != nil {
		v := *c.Search.MinQueryLength
		if v < MinMinQueryLength || v > MaxMinQueryLength {
			return fmt.Errorf("%w: min_query_length must be between %d and %d, got %d",
				ErrInvalidValue, MinMinQueryLength, MaxMinQueryLength, v)
		}
	}
	if c.Search.DebounceMs != nil {
		v := *c.Search.DebounceMs
		if v < MinDebounceMs || v > MaxDebounceMs {
			return fmt.Errorf("%w: debounce_ms must be between %d and %d, got %d",
				ErrInvalidValue, MinDebounceMs, MaxDebounceMs, v)
		}
	}
	if c.Search.Fields != nil {
		if _, err := parseFields(*c.Search.Fields); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
	}
	return nil
}

// CatalogPath returns the configured catalog file path ("" when not set).
func (c *Config) CatalogPath() string {
	return c.Catalog.Path
}

// MaxResults returns the maximum number of ranked results (defaults to 20).
func (c *Config) MaxResults() int {
	if c.Search.MaxResults == nil {
		return DefaultMaxResults
	}
	return *c.Search.MaxResults
}

// MinQueryLength returns the minimum query length in runes (defaults to 2).
func (c *Config) MinQueryLength() int {
	if c.Search.MinQueryLength == nil {
		return DefaultMinQueryLength
	}
	return *c.Search.MinQueryLength
}

// DebounceMs returns the debounce window in milliseconds (defaults to 300).
func (c *Config) DebounceMs() int {
	if c.Search.DebounceMs == nil {
		return DefaultDebounceMs
	}
	return *c.Search.DebounceMs
}

// Fuzzy returns whether the fuzzy name fallback is enabled (defaults to true).
func (c *Config) Fuzzy() bool {
	if c.Search.Fuzzy == nil {
		return DefaultFuzzy
	}
	return *c.Search.Fuzzy
}

// Fields returns the searchable fields (defaults to all four).
func (c *Config) Fields() []search.Field {
	if c.Search.Fields == nil {
		return search.DefaultConfig().Fields
	}
	fields, err := parseFields(*c.Search.Fields)
	if err != nil {
		// Validate rejects this at load time; a hand-built Config falls back.
		return search.DefaultConfig().Fields
	}
	return fields
}

// SearchConfig assembles the engine configuration from this config.
func (c *Config) SearchConfig() search.Config {
	return search.Config{
		MaxResults:     c.MaxResults(),
		MinQueryLength: c.MinQueryLength(),
		Debounce:       time.Duration(c.DebounceMs()) * time.Millisecond,
		EnableFuzzy:    c.Fuzzy(),
		Fields:         c.Fields(),
	}
}

// parseFields parses a comma-separated field list such as "name,category".
func parseFields(s string) ([]search.Field, error) {
	parts := strings.Split(s, ",")
	fields := make([]search.Field, 0, len(parts))
	for _, part := range parts {
		f := search.Field(strings.ToLower(strings.TrimSpace(part)))
		if f == "" {
			continue
		}
		switch f {
		case search.FieldName, search.FieldDescription, search.FieldCategory, search.FieldType:
			fields = append(fields, f)
		default:
			return nil, fmt.Errorf("unknown search field %q", f)
		}
	}
	if len(fields) == 0 {
		return nil, errors.New("at least one search field is required")
	}
	return fields, nil
}

// Dir returns the global glint directory: GLINT_DIR if set, else ~/.glint.
func Dir() string {
	if dir := os.Getenv("GLINT_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glint")
}

// LocalPath returns the path to the local (per-directory) config file.
func LocalPath() string {
	return filepath.Join(".glint", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file.
func GlobalPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
