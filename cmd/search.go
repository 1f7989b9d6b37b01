/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// search.go implements the "glint search" command.
//
// Design: The command submits the query through the debounced pipeline and
// waits on a subscription for the terminal state, exercising the same path a
// long-lived caller would observe. The query lands in history as a side
// effect, exactly as it does for watch-mode searches.

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mnl-au/glint/internal/format"
	"github.com/mnl-au/glint/internal/log"
	"github.com/mnl-au/glint/internal/search"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Long: `Search the product catalog and print relevance-ranked results.

Each result carries a score and a match type (exact, partial, category,
description, or fuzzy). The query is recorded in the search history.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(_ *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return PrintJSONError(err)
	}

	query := args[0]
	state, err := runPipeline(query)

	log.Event("search:search", "search").Query(query).Results(len(state.Results)).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	results := state.Results
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if JSON() {
		return PrintJSON(results)
	}
	return format.Results(Out(), results)
}

// runPipeline submits query through the debounced pipeline and blocks until
// the engine publishes a terminal state for it.
func runPipeline(query string) (search.State, error) {
	ch, cancel := engine.Subscribe()
	defer cancel()

	engine.Search(query)
	want := strings.TrimSpace(query)

	for state := range ch {
		if state.Query != want || state.Searching {
			continue
		}
		if state.Error != "" {
			return state, errors.New(state.Error)
		}
		if state.HasSearched {
			return state, nil
		}
	}
	return search.State{}, fmt.Errorf("search %q: engine closed", query)
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum results to print (default: all returned)")
	rootCmd.AddCommand(searchCmd)
}
