package search

import "github.com/mnl-au/glint/internal/catalog"

// MatchType records which classifier rule produced a result.
type MatchType string

const (
	MatchExact       MatchType = "exact"
	MatchPartial     MatchType = "partial"
	MatchCategory    MatchType = "category"
	MatchDescription MatchType = "description"

	// MatchFuzzy marks edit-distance fallback hits. Their scores always rank
	// below every substring tier.
	MatchFuzzy MatchType = "fuzzy"
)

// Result pairs a product with its relevance for one query. Results are built
// fresh on every scoring pass; they are never mutated after ranking.
type Result struct {
	Product   catalog.Product `json:"product"`
	Score     int             `json:"relevance_score"`
	MatchType MatchType       `json:"match_type"`
}

// State is the engine's observable search state. Snapshots handed to callers
// and subscribers are copies; holding one never blocks the engine.
type State struct {
	Query       string   `json:"query"`
	Results     []Result `json:"results"`
	Searching   bool     `json:"is_searching"`
	Error       string   `json:"error,omitempty"`
	HasSearched bool     `json:"has_searched"`
}

// SearchFailedMessage is the fixed user-facing error published when a scoring
// pass fails. Internals never leak into it.
const SearchFailedMessage = "Search failed. Please try again."
