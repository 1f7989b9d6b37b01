/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// catalog.go implements the "glint catalog" command for listing products.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mnl-au/glint/internal/catalog"
	"github.com/mnl-au/glint/internal/format"
	"github.com/mnl-au/glint/internal/log"
	"github.com/mnl-au/glint/internal/norm"
)

var (
	catalogCategory   string
	catalogCategories bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the product catalog",
	Long:  `List products in the loaded catalog, optionally filtered by category.`,
	RunE:  runCatalog,
}

func runCatalog(_ *cobra.Command, _ []string) error {
	if err := requireCatalog(); err != nil {
		return PrintJSONError(err)
	}

	products := engine.Products()

	if catalogCategories {
		categories := catalog.Categories(products)
		log.Event("catalog:catalog", "list").Detail("categories", len(categories)).Write(nil)
		if JSON() {
			return PrintJSON(categories)
		}
		return format.Suggestions(Out(), categories)
	}

	if catalogCategory != "" {
		want := norm.Normalize(catalogCategory)
		filtered := products[:0]
		for _, p := range products {
			if norm.Normalize(p.Category) == want {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	log.Event("catalog:catalog", "list").Detail("category", catalogCategory).Results(len(products)).Write(nil)

	if JSON() {
		return PrintJSON(products)
	}
	return format.Products(Out(), products)
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "Filter by category (case insensitive)")
	catalogCmd.Flags().BoolVar(&catalogCategories, "categories", false, "List distinct categories instead of products")
	rootCmd.AddCommand(catalogCmd)
}
