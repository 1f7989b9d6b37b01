/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// config.go implements the "glint config" command for configuration management.
//
// Design: Config follows a cascade model similar to git: local config
// (.glint/config.yaml) takes precedence over global (~/.glint/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mnl-au/glint/internal/config"
	"github.com/mnl-au/glint/internal/log"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "View or set config values",
	Long: `View or set config values.

  glint config                          # show config
  glint config search.max_results       # show search.max_results value
  glint config search.max_results 10    # set search.max_results

Configuration locations:
  Global: ~/.glint/config.yaml (GLINT_DIR overrides the directory)
  Local:  .glint/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var cfg *config.Config
	var err error
	if configLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		log.Event("config:config", "list").Write(nil)
		all := cfg.All()
		if JSON() {
			return PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("config:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("config:config", "set").Detail("key", args[0]).Write(err)
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("config:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if JSON() {
			return PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scopeName})
		}
		fmt.Fprintf(Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Use local config (.glint/config.yaml)")
	rootCmd.AddCommand(configCmd)
}
