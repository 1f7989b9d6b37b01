/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// suggest.go implements the "glint suggest" command for typeahead suggestions.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mnl-au/glint/internal/format"
	"github.com/mnl-au/glint/internal/log"
)

var suggestLimit int

var suggestCmd = &cobra.Command{
	Use:   "suggest [prefix]",
	Short: "Suggest queries for a partial input",
	Long: `Print typeahead suggestions drawn from the search history and the
product names. With no prefix, prints the most recent searches.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func runSuggest(_ *cobra.Command, args []string) error {
	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	suggestions := engine.Suggest(prefix, suggestLimit)

	log.Event("search:suggest", "suggest").Query(prefix).Results(len(suggestions)).Write(nil)

	if JSON() {
		return PrintJSON(suggestions)
	}
	return format.Suggestions(Out(), suggestions)
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "Maximum suggestions to print (default: 10)")
	rootCmd.AddCommand(suggestCmd)
}
