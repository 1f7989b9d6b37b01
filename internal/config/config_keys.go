// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the MCP and CLI interface where config
// is accessed by string keys (e.g., "search.max_results").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"catalog.path",
		"search.max_results", "search.min_query_length", "search.debounce_ms",
		"search.fuzzy", "search.fields",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "catalog.path":
		return c.Catalog.Path, nil
	case "search.max_results":
		return strconv.Itoa(c.MaxResults()), nil
	case "search.min_query_length":
		return strconv.Itoa(c.MinQueryLength()), nil
	case "search.debounce_ms":
		return strconv.Itoa(c.DebounceMs()), nil
	case "search.fuzzy":
		return strconv.FormatBool(c.Fuzzy()), nil
	case "search.fields":
		return fieldsString(c), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "catalog.path":
		c.Catalog.Path = value
	case "search.max_results":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxResults || n > MaxMaxResults {
			return fmt.Errorf("%w: search.max_results must be an integer between %d and %d",
				ErrInvalidValue, MinMaxResults, MaxMaxResults)
		}
		c.Search.MaxResults = &n
	case "search.min_query_length":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMinQueryLength || n > MaxMinQueryLength {
			return fmt.Errorf("%w: search.min_query_length must be an integer between %d and %d",
				ErrInvalidValue, MinMinQueryLength, MaxMinQueryLength)
		}
		c.Search.MinQueryLength = &n
	case "search.debounce_ms":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinDebounceMs || n > MaxDebounceMs {
			return fmt.Errorf("%w: search.debounce_ms must be an integer between %d and %d",
				ErrInvalidValue, MinDebounceMs, MaxDebounceMs)
		}
		c.Search.DebounceMs = &n
	case "search.fuzzy":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: search.fuzzy must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Search.Fuzzy = &b
	case "search.fields":
		if _, err := parseFields(value); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		c.Search.Fields = &value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"catalog.path":             c.Catalog.Path,
		"search.max_results":       strconv.Itoa(c.MaxResults()),
		"search.min_query_length":  strconv.Itoa(c.MinQueryLength()),
		"search.debounce_ms":       strconv.Itoa(c.DebounceMs()),
		"search.fuzzy":             strconv.FormatBool(c.Fuzzy()),
		"search.fields":            fieldsString(c),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "catalog.path":
		return c.Catalog.Path != ""
	case "search.max_results":
		return c.Search.MaxResults != nil
	case "search.min_query_length":
		return c.Search.MinQueryLength != nil
	case "search.debounce_ms":
		return c.Search.DebounceMs != nil
	case "search.fuzzy":
		return c.Search.Fuzzy != nil
	case "search.fields":
		return c.Search.Fields != nil
	default:
		return false
	}
}

func fieldsString(c *Config) string {
	fields := c.Fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}
