package cmd

import (
	"github.com/luuuc/readmegen/internal/mcp"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI clients",
	Long: `Starts a local MCP server on stdio.

Configure in ~/Library/Application Support/Claude/claude_desktop_config.json:

{
  "mcpServers": {
    "readmegen": {
      "command": "readmegen",
      "args": ["mcp"]
    }
  }
}

Tools:
- detect_project: the project signals as JSON
- generate_readme: a rendered README; missing answers fall back to the
  detected manifest values and .readmegen.yaml defaults`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(version)
		return server.ServeStdio()
	},
}
