package cli

import (
	"github.com/spf13/cobra"

	"github.com/vedanta-labs/vichara-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC and can be used with
Claude Desktop and other MCP-compatible AI assistants. It exposes the
same ask and retrieve operations as the CLI; the safety filter applies
to every tool call.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "vichara": {
        "command": "/path/to/vichara",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	ports := &mcp.Ports{
		Ask:       askService,
		Retrieval: retrievalService,
		Guard:     guardService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
