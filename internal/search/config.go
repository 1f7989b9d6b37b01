// config.go defines the engine configuration. Config is fixed at construction:
// the engine never re-reads it, so behaviour can't shift under a running
// pipeline.

package search

import (
	"fmt"
	"time"
)

// Field identifies a product field the classifier may consult.
type Field string

// Searchable product fields.
const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldCategory    Field = "category"
	FieldType        Field = "type"
)

// Config fixes engine behaviour at construction time.
type Config struct {
	MaxResults     int           // ranked results kept per search
	MinQueryLength int           // shorter queries (after trimming) yield nothing
	Debounce       time.Duration // quiet window before a submitted query runs
	EnableFuzzy    bool          // edit-distance name fallback when the ladder misses
	Fields         []Field       // fields the classifier consults
}

// DefaultConfig returns the standard configuration: 20 results, 2-rune minimum
// query, 300ms debounce, fuzzy fallback on, all four fields searchable.
func DefaultConfig() Config {
	return Config{
		MaxResults:     20,
		MinQueryLength: 2,
		Debounce:       300 * time.Millisecond,
		EnableFuzzy:    true,
		Fields:         []Field{FieldName, FieldDescription, FieldCategory, FieldType},
	}
}

// Validate checks that all values are usable. Engines reject invalid configs
// at construction rather than misbehaving later.
func (c Config) Validate() error {
	if c.MaxResults < 1 {
		return fmt.Errorf("max results must be at least 1, got %d", c.MaxResults)
	}
	if c.MinQueryLength < 1 {
		return fmt.Errorf("min query length must be at least 1, got %d", c.MinQueryLength)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce)
	}
	if len(c.Fields) == 0 {
		return fmt.Errorf("at least one search field is required")
	}
	for _, f := range c.Fields {
		switch f {
		case FieldName, FieldDescription, FieldCategory, FieldType:
		default:
			return fmt.Errorf("unknown search field %q", f)
		}
	}
	return nil
}

// fieldEnabled reports whether the classifier may consult f.
func (c Config) fieldEnabled(f Field) bool {
	for _, have := range c.Fields {
		if have == f {
			return true
		}
	}
	return false
}
