// ABOUTME: Mcp command serving the workspace over MCP stdio.
// ABOUTME: Intended to be launched by an MCP client, not by hand.

package main

import (
	"github.com/spf13/cobra"

	inkwellmcp "github.com/inkwell-notes/inkwell/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long:  `Expose notes and folders as MCP tools and resources over stdin/stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := inkwellmcp.NewServer(ws)
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
