/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// serve.go implements the "glint serve" command, starting the MCP server.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mnl-au/glint/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server over stdio, exposing catalog search
to LLM clients such as Claude Desktop.

The server uses the configured catalog (catalog.path, GLINT_CATALOG, or
--catalog) and shares the same search history as the CLI.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.Serve(Catalog())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
