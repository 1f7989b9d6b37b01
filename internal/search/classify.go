// classify.go implements the relevance ladder: a product is scored by the
// first rule that matches, walking from the strongest signal (exact name) down
// to the weakest (description substring), with an optional edit-distance
// fallback below all of them.

package search

import (
	"strings"

	"github.com/mnl-au/glint/internal/catalog"
	"github.com/mnl-au/glint/internal/match"
	"github.com/mnl-au/glint/internal/norm"
)

// Base scores per ladder tier. The 10-point gaps leave room for the
// popularity boosts (at most +8) to reorder products within a tier without
// ever promoting one past a stronger tier.
const (
	scoreNameExact        = 100
	scoreNamePrefix       = 90
	scoreNameContains     = 80
	scoreCategoryExact    = 70
	scoreCategoryContains = 60
	scoreTypeContains     = 50
	scoreDescContains     = 40

	boostBestSeller = 5
	boostNew        = 3

	// Fuzzy fallback gate and scale. The scale keeps base+boosts under
	// scoreDescContains, so fuzzy hits never outrank a substring hit.
	fuzzyThreshold = 0.65
	fuzzyScale     = 30
)

// Classify scores product p against query and reports whether it matched.
// The query must already be normalised and non-empty; product fields are
// normalised here. Disabled fields are skipped entirely, fallthrough included.
func Classify(p catalog.Product, query string, cfg Config) (Result, bool) {
	name := norm.Normalize(p.Name)
	category := norm.Normalize(p.Category)
	ptype := norm.Normalize(p.Type)
	desc := norm.Normalize(p.Description)

	var (
		score int
		mt    MatchType
	)
	switch {
	case cfg.fieldEnabled(FieldName) && name == query:
		score, mt = scoreNameExact, MatchExact
	case cfg.fieldEnabled(FieldName) && strings.HasPrefix(name, query):
		score, mt = scoreNamePrefix, MatchPartial
	case cfg.fieldEnabled(FieldName) && strings.Contains(name, query):
		score, mt = scoreNameContains, MatchPartial
	case cfg.fieldEnabled(FieldCategory) && category == query:
		score, mt = scoreCategoryExact, MatchCategory
	case cfg.fieldEnabled(FieldCategory) && strings.Contains(category, query):
		score, mt = scoreCategoryContains, MatchCategory
	case cfg.fieldEnabled(FieldType) && strings.Contains(ptype, query):
		score, mt = scoreTypeContains, MatchCategory
	case cfg.fieldEnabled(FieldDescription) && strings.Contains(desc, query):
		score, mt = scoreDescContains, MatchDescription
	case cfg.EnableFuzzy && cfg.fieldEnabled(FieldName):
		if sim := match.Score(name, query); sim >= fuzzyThreshold {
			score, mt = int(sim*fuzzyScale), MatchFuzzy
		}
	}
	if score == 0 {
		return Result{}, false
	}

	if p.IsBestSeller {
		score += boostBestSeller
	}
	if p.IsNew {
		score += boostNew
	}
	return Result{Product: p, Score: score, MatchType: mt}, true
}
