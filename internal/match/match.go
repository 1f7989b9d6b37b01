// Package match computes edit-distance similarity between strings. The search
// engine uses it as a last-resort signal when no substring rule applies, so a
// query like "glos" can still surface "gloss".
package match

import "github.com/mnl-au/glint/internal/norm"

// Levenshtein returns the edit distance between a and b: the minimum number of
// single-rune insertions, deletions, and substitutions needed to turn one into
// the other. O(len(a)*len(b)) time, two-row dynamic programming.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Score reports how similar a and b are on a [0,1] scale. Both inputs are
// normalised before comparison. Identical strings (including two empty
// strings) score 1.0; otherwise the score is 1 - distance/maxLen computed on
// the normalised strings, clamped to [0,1]. Smaller edit distance relative to
// length means a higher score.
func Score(a, b string) float64 {
	na, nb := norm.Normalize(a), norm.Normalize(b)
	if na == nb {
		return 1.0
	}

	// na != nb, so at least one is non-empty and maxLen > 0.
	maxLen := max(len([]rune(na)), len([]rune(nb)))
	s := 1.0 - float64(Levenshtein(na, nb))/float64(maxLen)
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
