// Package norm canonicalises text for comparison. Every match decision in the
// search engine goes through Normalize so that case and spacing never affect
// the outcome.
package norm

import "strings"

// Normalize lowercases s, trims leading and trailing whitespace, and collapses
// any run of whitespace to a single space.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
