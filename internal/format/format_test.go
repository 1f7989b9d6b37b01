package format_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnl-au/glint/internal/catalog"
	"github.com/mnl-au/glint/internal/format"
	"github.com/mnl-au/glint/internal/search"
)

func TestResults(t *testing.T) {
	var buf bytes.Buffer
	err := format.Results(&buf, []search.Result{
		{
			Product:   catalog.Product{ID: "g1", Name: "Rose Lip Gloss", Category: "Lips", Price: 12.5, IsBestSeller: true},
			Score:     105,
			MatchType: search.MatchExact,
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "105")
	assert.Contains(t, out, "exact")
	assert.Contains(t, out, "Rose Lip Gloss")
	assert.Contains(t, out, "$12.50")
	assert.Contains(t, out, "[best seller]")
}

func TestResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.Results(&buf, nil))
	assert.Equal(t, "No products found.\n", buf.String())
}

func TestHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.History(&buf, []string{"gloss", "balm"}))
	assert.Contains(t, buf.String(), " 1  gloss")
	assert.Contains(t, buf.String(), " 2  balm")

	buf.Reset()
	require.NoError(t, format.History(&buf, nil))
	assert.Equal(t, "No search history.\n", buf.String())
}

func TestStateTransitions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.State(&buf, search.State{Query: "gloss", Searching: true}))
	assert.Contains(t, buf.String(), "searching")

	buf.Reset()
	require.NoError(t, format.State(&buf, search.State{Query: "gloss", Error: search.SearchFailedMessage}))
	assert.Contains(t, buf.String(), search.SearchFailedMessage)

	buf.Reset()
	require.NoError(t, format.State(&buf, search.State{Query: "gloss", HasSearched: true}))
	assert.Contains(t, buf.String(), "0 result(s)")
}

func TestProductCard(t *testing.T) {
	md := format.ProductCard(catalog.Product{
		ID:          "s1",
		Name:        "Vitamin C Serum",
		Description: "Brightening serum",
		Category:    "Face",
		Type:        "serum",
		Price:       29,
		Stock:       12,
		IsNew:       true,
		ImageURL:    "https://example.com/serum.jpg",
	})
	assert.Contains(t, md, "# Vitamin C Serum")
	assert.Contains(t, md, "Brightening serum")
	assert.Contains(t, md, "| Price | $29.00 |")
	assert.Contains(t, md, "| New | yes |")
	assert.Contains(t, md, "![Vitamin C Serum](https://example.com/serum.jpg)")
	assert.NotContains(t, md, "Best seller")
}
