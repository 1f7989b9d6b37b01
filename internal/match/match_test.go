package match_test

import (
	"testing"

	"github.com/mnl-au/glint/internal/match"
	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"hello", "hello", 0},
		{"", "test", 4},
		{"test", "", 4},
		{"", "", 0},
		{"gloss", "glos", 1},
		{"balm", "palm", 1},
		{"flaw", "lawn", 2},
		{"crème", "creme", 1}, // rune-wise, not byte-wise
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, match.Levenshtein(tt.a, tt.b))
		})
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"gloss", "lip gloss"},
		{"", "abc"},
	}
	for _, p := range pairs {
		assert.Equal(t, match.Levenshtein(p[0], p[1]), match.Levenshtein(p[1], p[0]))
	}
}

func TestScore(t *testing.T) {
	t.Run("identical strings score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, match.Score("gloss", "gloss"))
	})

	t.Run("case and spacing ignored", func(t *testing.T) {
		assert.Equal(t, 1.0, match.Score("  Lip   Gloss ", "lip gloss"))
	})

	t.Run("both empty score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, match.Score("", ""))
	})

	t.Run("empty vs non-empty scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, match.Score("", "gloss"))
	})

	t.Run("in range", func(t *testing.T) {
		s := match.Score("gloss", "glos")
		assert.Greater(t, s, 0.0)
		assert.Less(t, s, 1.0)
		// distance 1 over max length 5
		assert.InDelta(t, 0.8, s, 1e-9)
	})

	t.Run("monotonic in distance", func(t *testing.T) {
		closer := match.Score("gloss", "glos")   // distance 1
		farther := match.Score("gloss", "glm")   // distance 3
		assert.Greater(t, closer, farther)
	})
}
