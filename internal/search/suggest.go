// suggest.go produces typeahead suggestions over the search history and the
// product names, using subsequence fuzzy matching ordered by match quality.

package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mnl-au/glint/internal/norm"
)

// Suggest returns up to limit candidate queries for prefix. Candidates are
// drawn from the history (recent first) and then the product names, so prior
// searches outrank catalog entries on equal match quality. An empty prefix
// returns the history itself. A non-positive limit falls back to the history
// cap.
func (e *Engine) Suggest(prefix string, limit int) []string {
	if limit <= 0 {
		limit = historyLimit
	}

	e.mu.RLock()
	candidates := make([]string, 0, len(e.history)+len(e.products))
	seen := make(map[string]struct{}, len(e.history)+len(e.products))
	add := func(s string) {
		key := norm.Normalize(s)
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, s)
	}
	for _, h := range e.history {
		add(h)
	}
	for _, p := range e.products {
		add(p.Name)
	}
	e.mu.RUnlock()

	if strings.TrimSpace(prefix) == "" {
		history := e.History()
		if len(history) > limit {
			history = history[:limit]
		}
		return history
	}

	matches := fuzzy.Find(prefix, candidates)
	out := make([]string, 0, limit)
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
