/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// watch.go implements the "glint watch" command: an interactive loop that
// feeds each input line through the debounced pipeline and prints the state
// transitions as they are published.
//
// Design: Input reading and state printing run on separate goroutines joined
// by the subscription channel, so a slow terminal never blocks the engine.
// Typing lines faster than the debounce window collapses them to the last
// one, which is the whole point of the pipeline.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mnl-au/glint/internal/format"
	"github.com/mnl-au/glint/internal/log"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Search interactively from stdin",
	Long: `Read queries from stdin, one per line, and print results as the engine
publishes them. Lines typed within the debounce window collapse to the last
one. A blank line clears the current search; EOF (Ctrl-D) exits.`,
	RunE: runWatch,
}

func runWatch(_ *cobra.Command, _ []string) error {
	if err := requireCatalog(); err != nil {
		return PrintJSONError(err)
	}

	ch, cancel := engine.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for state := range ch {
			if JSON() {
				_ = PrintJSON(state)
				continue
			}
			_ = format.State(Out(), state)
		}
	}()

	queries := 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			engine.ClearSearch()
			continue
		}
		engine.Search(line)
		queries++
	}

	// Give a query typed right before EOF its debounce window to complete
	// before tearing the subscription down.
	if queries > 0 {
		time.Sleep(engine.Config().Debounce + 250*time.Millisecond)
	}

	cancel()
	<-done

	log.Event("search:watch", "search").Detail("queries", queries).Write(scanner.Err())

	if err := scanner.Err(); err != nil {
		return PrintJSONError(fmt.Errorf("reading stdin: %w", err))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
