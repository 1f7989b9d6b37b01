/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// history.go implements the "glint history" command and its clear subcommand.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnl-au/glint/internal/format"
	"github.com/mnl-au/glint/internal/log"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long:  `Print the search history, most recent first. At most the ten most recent distinct queries are kept.`,
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the search history",
	RunE:  runHistoryClear,
}

func runHistory(_ *cobra.Command, _ []string) error {
	history := engine.History()

	log.Event("history:history", "list").Results(len(history)).Write(nil)

	if JSON() {
		return PrintJSON(history)
	}
	return format.History(Out(), history)
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	engine.ClearHistory()

	log.Event("history:clear", "clear").Write(nil)

	if JSON() {
		return PrintJSON(map[string]string{"status": "cleared"})
	}
	fmt.Fprintln(Out(), "Search history cleared.")
	return nil
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
