// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// search behaviour while this package handles presentation concerns like
// column alignment and markdown rendering.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/mnl-au/glint/internal/catalog"
	"github.com/mnl-au/glint/internal/search"
)

// price formats a price in dollars with two decimals.
func price(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// flags renders the product popularity markers, if any.
func flags(p catalog.Product) string {
	var parts []string
	if p.IsBestSeller {
		parts = append(parts, "best seller")
	}
	if p.IsNew {
		parts = append(parts, "new")
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, ", ") + "]"
}

// Results prints ranked search results in aligned columns.
func Results(w io.Writer, results []search.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No products found.")
		return nil
	}

	// Find max name length for alignment
	maxName := 4 // minimum "NAME"
	for _, r := range results {
		if len(r.Product.Name) > maxName {
			maxName = len(r.Product.Name)
		}
	}

	fmt.Fprintf(w, "%5s  %-11s  %-*s  %-12s  %8s\n", "SCORE", "MATCH", maxName, "NAME", "CATEGORY", "PRICE")
	for _, r := range results {
		fmt.Fprintf(w, "%5d  %-11s  %-*s  %-12s  %8s%s\n",
			r.Score, r.MatchType, maxName, r.Product.Name,
			r.Product.Category, price(r.Product.Price), flags(r.Product))
	}
	return nil
}

// Products prints catalog entries in aligned columns.
func Products(w io.Writer, products []catalog.Product) error {
	if len(products) == 0 {
		fmt.Fprintln(w, "Catalog is empty.")
		return nil
	}

	maxName := 4
	for _, p := range products {
		if len(p.Name) > maxName {
			maxName = len(p.Name)
		}
	}

	fmt.Fprintf(w, "%-8s  %-*s  %-12s  %-10s  %8s  %5s\n", "ID", maxName, "NAME", "CATEGORY", "TYPE", "PRICE", "STOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%-8s  %-*s  %-12s  %-10s  %8s  %5d%s\n",
			p.ID, maxName, p.Name, p.Category, p.Type, price(p.Price), p.Stock, flags(p))
	}
	return nil
}

// History prints the search history, most recent first.
func History(w io.Writer, history []string) error {
	if len(history) == 0 {
		fmt.Fprintln(w, "No search history.")
		return nil
	}
	for i, q := range history {
		fmt.Fprintf(w, "%2d  %s\n", i+1, q)
	}
	return nil
}

// Suggestions prints typeahead suggestions, one per line.
func Suggestions(w io.Writer, suggestions []string) error {
	for _, s := range suggestions {
		fmt.Fprintln(w, s)
	}
	return nil
}

// State prints one observable search state transition.
func State(w io.Writer, s search.State) error {
	switch {
	case s.Searching:
		fmt.Fprintf(w, "searching %q ...\n", s.Query)
	case s.Error != "":
		fmt.Fprintf(w, "error: %s\n", s.Error)
	case s.HasSearched:
		fmt.Fprintf(w, "%q: %d result(s)\n", s.Query, len(s.Results))
		return Results(w, s.Results)
	}
	return nil
}

// ProductCard renders a single product as markdown, suitable for terminal
// rendering with glamour or plain display with --raw.
func ProductCard(p catalog.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Description)
	}
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| ID | %s |\n", p.ID)
	fmt.Fprintf(&b, "| Category | %s |\n", p.Category)
	fmt.Fprintf(&b, "| Type | %s |\n", p.Type)
	fmt.Fprintf(&b, "| Price | %s |\n", price(p.Price))
	fmt.Fprintf(&b, "| Stock | %d |\n", p.Stock)
	if p.IsBestSeller {
		fmt.Fprintf(&b, "| Best seller | yes |\n")
	}
	if p.IsNew {
		fmt.Fprintf(&b, "| New | yes |\n")
	}
	if p.ImageURL != "" {
		fmt.Fprintf(&b, "\n![%s](%s)\n", p.Name, p.ImageURL)
	}
	return b.String()
}
