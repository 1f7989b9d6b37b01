/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE handles engine initialisation lazily - only
// commands that search or read the catalog trigger it. This lets bootstrap
// commands (config, version, serve) work without a catalog or data directory
// existing. The noEngineCommands map controls which commands skip
// initialisation.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mnl-au/glint/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "Relevance-ranked product search for JSON catalogs",
	Long:  `A product search engine with relevance-ranked matching, fuzzy fallback, typeahead suggestions, and persistent search history.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if !noEngineCommands[topLevelCmdName(cmd)] {
			if err := initEngine(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise engine: %w", err)
			}
		}

		return nil
	},
}

// noEngineCommands lists commands that bypass engine initialisation.
// Bootstrap commands must work before any catalog or data directory exists,
// and serve manages its own engine lifecycle.
var noEngineCommands = map[string]bool{
	"config":     true,
	"version":    true,
	"serve":      true,
	"help":       true,
	"completion": true,
}

// topLevelCmdName returns the name of the top-level command (direct child of
// root). For "glint history clear", returns "history".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens analytics logging, executes the command, and ensures the engine and
// history store shut down cleanly before exit. Exit code 1 indicates error.
func Execute() {
	// Initialise analytics logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: analytics log unavailable: %v\n", err)
	}
	defer log.Close()

	err := rootCmd.Execute()

	closeEngine()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
