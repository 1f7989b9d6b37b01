/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// exact.go implements the "glint exact" command for exact name lookup.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnl-au/glint/internal/catalog"
	"github.com/mnl-au/glint/internal/format"
	"github.com/mnl-au/glint/internal/log"
)

var exactCmd = &cobra.Command{
	Use:   "exact <name>",
	Short: "Look up a product by exact name",
	Long: `Look up the single product whose name exactly matches the query.

Matching ignores case and surrounding or repeated whitespace. When several
products share a name, the first in catalog order wins.`,
	Args: cobra.ExactArgs(1),
	RunE: runExact,
}

func runExact(_ *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return PrintJSONError(err)
	}

	query := args[0]
	p, ok := engine.ExactMatch(query)

	log.Event("search:exact", "lookup").Query(query).Detail("found", ok).Write(nil)

	if !ok {
		return PrintJSONError(fmt.Errorf("no product named %q", query))
	}

	if JSON() {
		return PrintJSON(p)
	}
	return format.Products(Out(), []catalog.Product{p})
}

func init() {
	rootCmd.AddCommand(exactCmd)
}
