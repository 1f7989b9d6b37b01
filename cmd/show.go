/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// show.go implements the "glint show" command for displaying a single product.
//
// Design: Terminal output gets glamour markdown rendering; pipe/redirect gets
// raw markdown. The argument is tried as a product ID first, then as an exact
// name, so both "glint show g1" and "glint show 'Rose Lip Gloss'" work.

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mnl-au/glint/internal/catalog"
	"github.com/mnl-au/glint/internal/format"
	"github.com/mnl-au/glint/internal/log"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show a product",
	Long:  `Display a single product as a rendered card, looked up by ID or exact name.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(_ *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return PrintJSONError(err)
	}

	arg := args[0]
	p, ok := lookupProduct(arg)

	log.Event("search:show", "read").Query(arg).Detail("found", ok).Write(nil)

	if !ok {
		return PrintJSONError(fmt.Errorf("no product with id or name %q", arg))
	}

	if JSON() {
		return PrintJSON(p)
	}

	md := format.ProductCard(p)

	// Render with glamour if TTY and not --raw
	if !showRaw && term.IsTerminal(int(os.Stdout.Fd())) {
		if rendered, err := glamour.Render(md, "dark"); err == nil {
			fmt.Fprint(Out(), rendered)
			return nil
		}
	}

	fmt.Fprint(Out(), md)
	return nil
}

// lookupProduct resolves an ID or an exact (normalised) name to a product.
func lookupProduct(arg string) (catalog.Product, bool) {
	for _, p := range engine.Products() {
		if p.ID == arg {
			return p, true
		}
	}
	return engine.ExactMatch(arg)
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Output raw markdown without rendering")
	rootCmd.AddCommand(showCmd)
}
