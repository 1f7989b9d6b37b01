// Package catalog defines the product snapshot consumed by the search engine.
// A snapshot is supplied wholesale by the caller (typically loaded from a JSON
// file) and is read-only to the engine: updates replace the entire snapshot,
// never individual products.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Product is a single searchable catalog entry. ID is unique within a
// snapshot. Name, Description, Category and Type are free text and are
// normalised at match time, never stored normalised.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Type         string  `json:"type"`
	Price        float64 `json:"price,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	Stock        int     `json:"stock,omitempty"`
	IsNew        bool    `json:"is_new,omitempty"`
	IsBestSeller bool    `json:"is_best_seller,omitempty"`
}

// Load decodes a JSON array of products from r.
func Load(r io.Reader) ([]Product, error) {
	var products []Product
	dec := json.NewDecoder(r)
	if err := dec.Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

// LoadFile reads a product snapshot from a JSON file.
func LoadFile(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	products, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return products, nil
}

// Validate checks snapshot integrity: every product needs an ID and a name,
// and IDs must be unique within the snapshot.
func Validate(products []Product) error {
	seen := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product %d: missing id", i)
		}
		if p.Name == "" {
			return fmt.Errorf("product %s: missing name", p.ID)
		}
		if prev, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate product id %q (positions %d and %d)", p.ID, prev, i)
		}
		seen[p.ID] = i
	}
	return nil
}

// Categories returns the distinct categories in the snapshot, sorted.
func Categories(products []Product) []string {
	set := make(map[string]struct{})
	for _, p := range products {
		if p.Category != "" {
			set[p.Category] = struct{}{}
		}
	}
	cats := make([]string, 0, len(set))
	for c := range set {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
